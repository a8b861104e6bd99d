package interaction

import (
	"context"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/interaction/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	var param CommentParam
	if err := c.BindAndValidate(&param); err != nil || param.VideoID <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("video_id is required"), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).CreateComment(identity.UserID, param.VideoID, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// CommentList returns a video's comments, newest first.
func CommentList(ctx context.Context, c *app.RequestContext) {
	videoID, ok := requiredQueryID(c, "video_id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("video_id is required"), nil)
		return
	}

	items, err := service.NewCommentService(ctx).ListComments(videoID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
