package video

import (
	"context"

	"speakup/cmd/video/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetInfo returns one video with its comments, reactions and counts.
func GetInfo(ctx context.Context, c *app.RequestContext) {
	videoID, ok := pathID(c, "id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid video ID"), nil)
		return
	}

	detail, err := service.NewVideoInfoService(ctx).GetVideoInfo(videoID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

// GetMetadata resolves a video by its content hash.
func GetMetadata(ctx context.Context, c *app.RequestContext) {
	hash := c.Param("hash")
	if hash == "" {
		SendResponse(c, errno.ParamErr.WithMessage("hash is required"), nil)
		return
	}

	detail, err := service.NewVideoInfoService(ctx).GetVideoByHash(hash)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}
