package service

import (
	"context"

	"speakup/cmd/model"
	"speakup/cmd/user/dal/db"
	"speakup/pkg/errno"
	"speakup/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser checks the credentials. Unknown name and wrong password get
// the same answer so the caller learns nothing about which was wrong.
func (s *LoginUserService) LoginUser(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("Username and password are required")
	}

	user, err := db.QueryUserByName(s.ctx, username)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.QueryUserByName failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if user == nil {
		return nil, errno.LoginErr
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.LoginErr
	}
	return user, nil
}
