package service

import (
	"context"

	"speakup/cmd/model"
	"speakup/cmd/user/dal/db"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ListUsersService struct {
	ctx context.Context
}

func NewListUsersService(ctx context.Context) *ListUsersService {
	return &ListUsersService{ctx: ctx}
}

// ListUsers returns the safe projection of every account.
func (s *ListUsersService) ListUsers() ([]*model.UserInfo, error) {
	users, err := db.ListUsers(s.ctx)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListUsers failed: %v", err)
		return nil, errno.UnavailableErr
	}
	infos := make([]*model.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}
	return infos, nil
}
