package user

import (
	"context"

	"speakup/cmd/user/service"
	"speakup/pkg/errno"
	"speakup/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Login(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Username and password are required"), nil)
		return
	}

	user, err := service.NewLoginUserService(ctx).LoginUser(param.UserName, param.Password)
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

	SendResponse(c, errno.Success, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user.Info(),
	})
}
