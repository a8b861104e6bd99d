package service

import (
	"context"
	"time"

	"speakup/cmd/model"
	"speakup/cmd/user/dal/db"
	"speakup/pkg/constants"
	"speakup/pkg/errno"
	"speakup/pkg/namegen"
	"speakup/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

// CreateUser registers a new account. The display name is allocated from
// the themed pool; the store's unique constraint catches a last-moment
// collision the allocator's existence check missed.
func (s *CreateUserService) CreateUser(password string) (*model.User, error) {
	if len(password) < constants.MinPasswordLen {
		return nil, errno.ParamErr.WithMessage("Password must be at least 6 characters long")
	}

	username, err := namegen.GenerateUnique(s.ctx, db.UserNameExists)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "username allocation failed: %v", err)
		return nil, errno.UnavailableErr
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserID:    utils.GenerateID(),
		UserName:  username,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.UserAlreadyExistErr
		}
		hlog.CtxErrorf(s.ctx, "dao.CreateUser failed: %v", err)
		return nil, errno.UnavailableErr
	}
	return user, nil
}
