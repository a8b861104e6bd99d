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

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// Like moves the pair to the Liked state. Liking twice is a Conflict;
// liking while Disliked removes the dislike in the same transaction.
func (s *LikeActionService) Like(userID, videoID int64) error {
	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.VideoExists failed: %v", err)
		return errno.UnavailableErr
	}
	if !exists {
		return errno.VideoNotFoundErr
	}

	liked, err := db.LikeExists(s.ctx, userID, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.LikeExists failed: %v", err)
		return errno.UnavailableErr
	}
	if liked {
		return errno.LikeAlreadyExistErr
	}

	if err := db.AddLike(s.ctx, userID, videoID); err != nil {
		// a concurrent like won the race between check and insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errno.LikeAlreadyExistErr
		}
		hlog.CtxErrorf(s.ctx, "dao.AddLike failed: %v", err)
		return errno.UnavailableErr
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return nil
}

// Unlike removes the like row; NotFound when the pair was not Liked.
func (s *LikeActionService) Unlike(userID, videoID int64) error {
	removed, err := db.RemoveLike(s.ctx, userID, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.RemoveLike failed: %v", err)
		return errno.UnavailableErr
	}
	if !removed {
		return errno.NotFoundErr.WithMessage("Like not found")
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return nil
}

func (s *LikeActionService) ListLikes(videoID, userID int64) ([]*ReactionItem, error) {
	likes, err := db.ListLikes(s.ctx, videoID, userID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListLikes failed: %v", err)
		return nil, errno.UnavailableErr
	}

	userIDs := make([]int64, 0, len(likes))
	videoIDs := make([]int64, 0, len(likes))
	for _, l := range likes {
		userIDs = append(userIDs, l.UserID)
		videoIDs = append(videoIDs, l.VideoID)
	}
	refs, err := loadRefs(s.ctx, userIDs, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load like refs failed: %v", err)
		return nil, errno.UnavailableErr
	}

	items := make([]*ReactionItem, 0, len(likes))
	for _, l := range likes {
		items = append(items, &ReactionItem{
			UserID:    l.UserID,
			VideoID:   l.VideoID,
			CreatedAt: l.CreatedAt,
			User:      refs.userInfo(l.UserID),
			Video:     refs.videoInfo(l.VideoID),
		})
	}
	return items, nil
}
