package db

import (
	"context"

	"speakup/cmd/model"

	"github.com/pkg/errors"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

func ListComments(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	query := DB.WithContext(ctx).Model(&model.Comment{})
	if videoID != 0 {
		query = query.Where("video_id = ?", videoID)
	}
	if err := query.Order("created_at desc").Order("comment_id desc").Find(&comments).Error; err != nil {
		return nil, errors.Wrap(err, "ListComments failed")
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoCommentCount failed")
	}
	return count, nil
}
