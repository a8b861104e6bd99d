package video

import (
	"context"
	"strconv"

	"speakup/cmd/video/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

// Feed returns a page of recent videos with their reaction counts.
func Feed(ctx context.Context, c *app.RequestContext) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			SendResponse(c, errno.ParamErr.WithMessage("Invalid page"), nil)
			return
		}
		page = p
	}

	items, err := service.NewFeedListService(ctx).FeedList(page)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"page":   page,
		"videos": items,
	})
}
