package db

import (
	"context"
	"time"

	"speakup/cmd/model"
	"speakup/pkg/constants"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The like/dislike pair for one (user, video) is a three-state machine:
// Neutral, Liked, Disliked. AddLike and AddDislike are the only writers
// that change which side holds the row, and each runs as one transaction
// so a concurrent reader never observes both rows at once. The unique
// (user_id, video_id) index turns a lost race into gorm.ErrDuplicatedKey
// instead of a duplicate row.

func LikeExists(ctx context.Context, userID, videoID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "LikeExists failed")
	}
	return count != 0, nil
}

func DislikeExists(ctx context.Context, userID, videoID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Dislike{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "DislikeExists failed")
	}
	return count != 0, nil
}

// AddLike inserts the like and removes any standing dislike for the pair
// in one transaction (the crossover rule). A duplicate-key error from a
// concurrent like passes through untranslated for the service to map.
func AddLike(ctx context.Context, userID, videoID int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Delete(&model.Dislike{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.Like{
			UserID:    userID,
			VideoID:   videoID,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "AddLike failed")
	}
	return nil
}

// AddDislike is the mirror of AddLike.
func AddDislike(ctx context.Context, userID, videoID int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.Dislike{
			UserID:    userID,
			VideoID:   videoID,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "AddDislike failed")
	}
	return nil
}

// RemoveLike deletes the row if present and reports whether anything was
// removed.
func RemoveLike(ctx context.Context, userID, videoID int64) (bool, error) {
	res := DB.WithContext(ctx).Where("user_id = ? AND video_id = ?", userID, videoID).Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "RemoveLike failed")
	}
	return res.RowsAffected > 0, nil
}

func RemoveDislike(ctx context.Context, userID, videoID int64) (bool, error) {
	res := DB.WithContext(ctx).Where("user_id = ? AND video_id = ?", userID, videoID).Delete(&model.Dislike{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "RemoveDislike failed")
	}
	return res.RowsAffected > 0, nil
}

// ListLikes returns rows newest-first, optionally filtered by video
// and/or user (zero means no filter).
func ListLikes(ctx context.Context, videoID, userID int64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	query := DB.WithContext(ctx).Model(&model.Like{})
	if videoID != 0 {
		query = query.Where("video_id = ?", videoID)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Order("created_at desc").Order("like_id desc").Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "ListLikes failed")
	}
	return likes, nil
}

func ListDislikes(ctx context.Context, videoID, userID int64) ([]*model.Dislike, error) {
	dislikes := make([]*model.Dislike, 0)
	query := DB.WithContext(ctx).Model(&model.Dislike{})
	if videoID != 0 {
		query = query.Where("video_id = ?", videoID)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Order("created_at desc").Order("dislike_id desc").Find(&dislikes).Error; err != nil {
		return nil, errors.Wrap(err, "ListDislikes failed")
	}
	return dislikes, nil
}

func GetVideoLikeCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoLikeCount failed")
	}
	return count, nil
}

func GetVideoDislikeCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Dislike{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoDislikeCount failed")
	}
	return count, nil
}

type videoCount struct {
	VideoID int64
	Total   int64
}

// CountByVideoIDs groups row counts for a batch of videos in one query.
// The value parameter picks the relation table (model.Like{} etc).
func CountByVideoIDs(ctx context.Context, value interface{}, videoIDs []int64) (map[int64]int64, error) {
	counts := make([]videoCount, 0)
	if len(videoIDs) == 0 {
		return map[int64]int64{}, nil
	}
	if err := DB.WithContext(ctx).Model(value).
		Select("video_id as video_id, count(*) as total").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "CountByVideoIDs failed")
	}
	m := make(map[int64]int64, len(counts))
	for _, c := range counts {
		m[c.VideoID] = c.Total
	}
	return m, nil
}
