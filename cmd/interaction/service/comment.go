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
	"speakup/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CreateComment appends a comment; there is no uniqueness rule here, a
// user may comment on the same video any number of times.
func (s *CommentService) CreateComment(userID, videoID int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("video_id and content are required")
	}

	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.VideoExists failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if !exists {
		return nil, errno.VideoNotFoundErr
	}

	comment := &model.Comment{
		CommentID: utils.GenerateID(),
		UserID:    userID,
		VideoID:   videoID,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.CreateComment failed: %v", err)
		return nil, errno.UnavailableErr
	}
	redis.InvalidateVideoCounters(s.ctx, videoID)
	return comment, nil
}

func (s *CommentService) ListComments(videoID int64) ([]*CommentItem, error) {
	comments, err := db.ListComments(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListComments failed: %v", err)
		return nil, errno.UnavailableErr
	}

	userIDs := make([]int64, 0, len(comments))
	videoIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
		videoIDs = append(videoIDs, c.VideoID)
	}
	refs, err := loadRefs(s.ctx, userIDs, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "load comment refs failed: %v", err)
		return nil, errno.UnavailableErr
	}

	items := make([]*CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &CommentItem{
			CommentID: c.CommentID,
			VideoID:   c.VideoID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			User:      refs.userInfo(c.UserID),
			Video:     refs.videoInfo(c.VideoID),
		})
	}
	return items, nil
}
