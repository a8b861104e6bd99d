package db

import (
	"context"

	"speakup/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateReport inserts the row; the unique (user_id, video_id) index
// rejects a second report for the same pair.
func CreateReport(ctx context.Context, report *model.Report) error {
	if err := DB.WithContext(ctx).Create(report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrap(err, "CreateReport failed")
	}
	return nil
}

func ReportExists(ctx context.Context, userID, videoID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Report{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "ReportExists failed")
	}
	return count != 0, nil
}

func GetReport(ctx context.Context, userID, videoID int64) (*model.Report, error) {
	var report model.Report
	err := DB.WithContext(ctx).Model(&model.Report{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetReport failed")
	}
	return &report, nil
}

func ListReports(ctx context.Context, videoID, userID int64) ([]*model.Report, error) {
	reports := make([]*model.Report, 0)
	query := DB.WithContext(ctx).Model(&model.Report{})
	if videoID != 0 {
		query = query.Where("video_id = ?", videoID)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Order("created_at desc").Order("report_id desc").Find(&reports).Error; err != nil {
		return nil, errors.Wrap(err, "ListReports failed")
	}
	return reports, nil
}

func GetVideoReportCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Report{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoReportCount failed")
	}
	return count, nil
}
