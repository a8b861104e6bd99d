package service

import (
	"context"
	"strings"
	"time"

	"speakup/cmd/interaction/dal/db"
	"speakup/cmd/interaction/infras/redis"
	"speakup/cmd/model"
	videodb "speakup/cmd/video/dal/db"
	"speakup/pkg/constants"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ReportService struct {
	ctx context.Context
}

func NewReportService(ctx context.Context) *ReportService {
	return &ReportService{ctx: ctx}
}

// Report files at most one report per (user, video) pair. A second
// attempt is a Conflict and never updates the stored reason.
func (s *ReportService) Report(userID, videoID int64, reason string) (*model.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errno.ParamErr.WithMessage("video_id and reason are required")
	}

	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.VideoExists failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if !exists {
		return nil, errno.VideoNotFoundErr
	}

	reported, err := db.ReportExists(s.ctx, userID, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ReportExists failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if reported {
		return nil, errno.ReportAlreadyExistErr
	}

	report := &model.Report{
		UserID:    userID,
		VideoID:   videoID,
		Reason:    reason,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateReport(s.ctx, report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ReportAlreadyExistErr
		}
		hlog.CtxErrorf(s.ctx, "dao.CreateReport failed: %v", err)
		return nil, errno.UnavailableErr
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return report, nil
}

func (s *ReportService) ListReports(videoID, userID int64) ([]*ReportItem, error) {
	reports, err := db.ListReports(s.ctx, videoID, userID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListReports failed: %v", err)
		return nil, errno.UnavailableErr
	}

	userIDs := make([]int64, 0, len(reports))
	videoIDs := make([]int64, 0, len(reports))
	for _, r := range reports {
		userIDs = append(userIDs, r.UserID)
		videoIDs = append(videoIDs, r.VideoID)
	}
	refs, err := loadRefs(s.ctx, userIDs, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load report refs failed: %v", err)
		return nil, errno.UnavailableErr
	}

	items := make([]*ReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, &ReportItem{
			ReactionItem: ReactionItem{
				UserID:    r.UserID,
				VideoID:   r.VideoID,
				CreatedAt: r.CreatedAt,
				User:      refs.userInfo(r.UserID),
				Video:     refs.videoInfo(r.VideoID),
			},
			Reason: r.Reason,
		})
	}
	return items, nil
}
