package user

import (
	"context"

	"speakup/cmd/user/service"
	"speakup/pkg/errno"
	"speakup/pkg/jwt"
	"speakup/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Register creates an account from just a password; the display name is
// allocated server-side. The response carries a ready-to-use token.
func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Password is required"), nil)
		return
	}
	if param.Password == "" {
		SendResponse(c, errno.ParamErr.WithMessage("Password is required"), nil)
		return
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(param.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	token, err := jwt.Issue(jwt.Identity{UserID: user.UserID, UserName: user.UserName})
	if err != nil {
		hlog.CtxErrorf(ctx, "issue token failed: %v", err)
		SendResponse(c, errno.ServiceErr, nil)
		return
	}

	if metrics.Default != nil {
		metrics.Default.Registrations.Inc()
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":  user.Info(),
		"token": token,
	})
}
