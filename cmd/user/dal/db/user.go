package db

import (
	"context"

	"speakup/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

// QueryUserByName fetches the full row, hash included. Callers outside
// the login path must project through model.UserInfo.
func QueryUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "QueryUserByName failed")
	}
	return &user, nil
}

func QueryUserByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "QueryUserByID failed")
	}
	return &user, nil
}

func UserNameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "UserNameExists failed")
	}
	return count != 0, nil
}

func ListUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if err := DB.WithContext(ctx).Model(&model.User{}).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "ListUsers failed")
	}
	return users, nil
}

// QueryUsersByIDs batch-fetches users for response shaping.
func QueryUsersByIDs(ctx context.Context, userIDs []int64) (map[int64]*model.User, error) {
	users := make([]*model.User, 0)
	if len(userIDs) == 0 {
		return map[int64]*model.User{}, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "QueryUsersByIDs failed")
	}
	m := make(map[int64]*model.User, len(users))
	for _, u := range users {
		m[u.UserID] = u
	}
	return m, nil
}
