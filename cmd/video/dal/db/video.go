package db

import (
	"context"

	"speakup/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

func GetVideoByID(ctx context.Context, videoID int64) (*model.Video, error) {
	var video model.Video
	err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetVideoByID failed")
	}
	return &video, nil
}

func GetVideoByHash(ctx context.Context, hash string) (*model.Video, error) {
	var video model.Video
	err := DB.WithContext(ctx).Model(&model.Video{}).Where("hash = ?", hash).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetVideoByHash failed")
	}
	return &video, nil
}

func VideoExists(ctx context.Context, videoID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "VideoExists failed")
	}
	return count != 0, nil
}

func ListVideos(ctx context.Context, limit, offset int) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Order("created_at desc").Order("video_id desc").
		Limit(limit).Offset(offset).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideos failed")
	}
	return videos, nil
}

func ListVideosByUser(ctx context.Context, userID int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userID).
		Order("created_at desc").Order("video_id desc").
		Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideosByUser failed")
	}
	return videos, nil
}

// DeleteVideoTx removes the video row together with its dependent
// comment, like, dislike and report rows in one transaction. The media
// bytes on the pinning service are left alone.
func DeleteVideoTx(ctx context.Context, videoID int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Dislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Report{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoID).Delete(&model.Video{}).Error
	})
	if err != nil {
		return errors.Wrap(err, "DeleteVideoTx failed")
	}
	return nil
}
