package service

import (
	"context"

	"speakup/cmd/model"
	"speakup/cmd/user/dal/db"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUserInfo(userID int64) (*model.UserInfo, error) {
	user, err := db.QueryUserByID(s.ctx, userID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.QueryUserByID failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if user == nil {
		return nil, errno.UserNotFoundErr
	}
	return user.Info(), nil
}
