package user

import (
	"context"
	"strconv"

	"speakup/cmd/user/service"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func List(ctx context.Context, c *app.RequestContext) {
	users, err := service.NewListUsersService(ctx).ListUsers()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, users)
}

func GetInfo(ctx context.Context, c *app.RequestContext) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid user ID"), nil)
		return
	}

	info, err := service.NewGetUserInfoService(ctx).GetUserInfo(userID)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}
