package interaction

import (
	"context"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/interaction/service"
	"speakup/pkg/errno"
	"speakup/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/app"
)

// LikeAction records the authenticated identity's like on a video.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	var param LikeParam
	if err := c.BindAndValidate(&param); err != nil || param.VideoID <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("video_id is required"), nil)
		return
	}

	if err := service.NewLikeActionService(ctx).Like(identity.UserID, param.VideoID); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if metrics.Default != nil {
		metrics.Default.Reactions.WithLabelValues("like").Inc()
	}
	SendResponse(c, errno.Success, map[string]string{"message": "Video liked"})
}

// UnlikeAction removes the identity's like; 404 when there is none.
func UnlikeAction(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	videoID, ok := requiredQueryID(c, "video_id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("video_id is required"), nil)
		return
	}

	if err := service.NewLikeActionService(ctx).Unlike(identity.UserID, videoID); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if metrics.Default != nil {
		metrics.Default.Reactions.WithLabelValues("unlike").Inc()
	}
	SendResponse(c, errno.Success, map[string]string{"message": "Like removed successfully"})
}

// LikeList is a pure read, newest-first, optionally filtered by video
// and/or user.
func LikeList(ctx context.Context, c *app.RequestContext) {
	videoID, ok := queryID(c, "video_id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid video_id"), nil)
		return
	}
	userID, ok := queryID(c, "user_id")
	if !ok {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid user_id"), nil)
		return
	}

	items, err := service.NewLikeActionService(ctx).ListLikes(videoID, userID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
