package video

import (
	"context"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/video/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

// Publish registers an already-pinned video by its content hash.
func Publish(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	var param PublishParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	video, err := service.NewPublishVideoService(ctx).PublishVideo(identity.UserID, param.Hash, param.Caption, param.Tags)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"message": "Video published",
		"video":   video,
	})
}
