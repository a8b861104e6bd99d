package video

import (
	"context"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/video/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

// Delete removes a video the identity owns along with its comments,
// reactions and reports.
func Delete(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	videoID, ok := pathID(c, "id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid video ID"), nil)
		return
	}

	deleted, err := service.NewDeleteVideoService(ctx).DeleteVideo(identity.UserID, videoID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"message": "Video deleted successfully",
		"video":   deleted,
	})
}
