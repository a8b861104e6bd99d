package interaction

import (
	"context"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/interaction/service"
	"speakup/pkg/errno"
	"speakup/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateReport files the identity's report against a video. A user can
// report a video at most once; the reason is mandatory.
func CreateReport(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	var param ReportParam
	if err := c.BindAndValidate(&param); err != nil || param.VideoID <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("video_id is required"), nil)
		return
	}

	report, err := service.NewReportService(ctx).Report(identity.UserID, param.VideoID, param.Reason)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if metrics.Default != nil {
		metrics.Default.Reactions.WithLabelValues("report").Inc()
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"message": "Video reported",
		"report":  report,
	})
}

func ReportList(ctx context.Context, c *app.RequestContext) {
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

	items, err := service.NewReportService(ctx).ListReports(videoID, userID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
