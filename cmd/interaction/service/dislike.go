package service

import (
	"context"

	"speakup/cmd/interaction/dal/db"
	"speakup/cmd/interaction/infras/redis"
	videodb "speakup/cmd/video/dal/db"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type DislikeActionService struct {
	ctx context.Context
}

func NewDislikeActionService(ctx context.Context) *DislikeActionService {
	return &DislikeActionService{ctx: ctx}
}

// Dislike mirrors Like: disliking twice is a Conflict, disliking while
// Liked removes the like in the same transaction.
func (s *DislikeActionService) Dislike(userID, videoID int64) error {
	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.VideoExists failed: %v", err)
		return errno.UnavailableErr
	}
	if !exists {
		return errno.VideoNotFoundErr
	}

	disliked, err := db.DislikeExists(s.ctx, userID, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.DislikeExists failed: %v", err)
		return errno.UnavailableErr
	}
	if disliked {
		return errno.DislikeAlreadyExistErr
	}

	if err := db.AddDislike(s.ctx, userID, videoID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errno.DislikeAlreadyExistErr
		}
		hlog.CtxErrorf(s.ctx, "dao.AddDislike failed: %v", err)
		return errno.UnavailableErr
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return nil
}

func (s *DislikeActionService) Undislike(userID, videoID int64) error {
	removed, err := db.RemoveDislike(s.ctx, userID, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.RemoveDislike failed: %v", err)
		return errno.UnavailableErr
	}
	if !removed {
		return errno.NotFoundErr.WithMessage("Dislike not found")
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return nil
}

func (s *DislikeActionService) ListDislikes(videoID, userID int64) ([]*ReactionItem, error) {
	dislikes, err := db.ListDislikes(s.ctx, videoID, userID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListDislikes failed: %v", err)
		return nil, errno.UnavailableErr
	}

	userIDs := make([]int64, 0, len(dislikes))
	videoIDs := make([]int64, 0, len(dislikes))
	for _, d := range dislikes {
		userIDs = append(userIDs, d.UserID)
		videoIDs = append(videoIDs, d.VideoID)
	}
	refs, err := loadRefs(s.ctx, userIDs, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load dislike refs failed: %v", err)
		return nil, errno.UnavailableErr
	}

	items := make([]*ReactionItem, 0, len(dislikes))
	for _, d := range dislikes {
		items = append(items, &ReactionItem{
			UserID:    d.UserID,
			VideoID:   d.VideoID,
			CreatedAt: d.CreatedAt,
			User:      refs.userInfo(d.UserID),
			Video:     refs.videoInfo(d.VideoID),
		})
	}
	return items, nil
}
