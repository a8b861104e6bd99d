package service

import (
	"context"

	interaction "speakup/cmd/interaction/service"
	"speakup/cmd/model"
	userdb "speakup/cmd/user/dal/db"
	"speakup/cmd/video/dal/db"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VideoDetail is the full read-side graph for one video: the record, its
// owner, every dependent collection (each with safe user projections)
// and the aggregate counts.
type VideoDetail struct {
	VideoID    int64                       `json:"id"`
	Hash       string                      `json:"hash"`
	Caption    string                      `json:"caption"`
	Tags       []string                    `json:"tags"`
	User       *model.UserInfo             `json:"user"`
	CreatedAt  string                      `json:"created_at"`
	UpdatedAt  string                      `json:"updated_at"`
	Comments   []*interaction.CommentItem  `json:"comments"`
	Likes      []*interaction.ReactionItem `json:"likes"`
	Dislikes   []*interaction.ReactionItem `json:"dislikes"`
	Reports    []*interaction.ReportItem   `json:"reports"`
	Count      *model.ReactionCount        `json:"count"`
	AccessURLs ipfs.AccessURLs             `json:"access_urls"`
}

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

func (s *VideoInfoService) GetVideoInfo(videoID int64) (*VideoDetail, error) {
	video, err := db.GetVideoByID(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetVideoByID failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	return s.buildDetail(video)
}

// GetVideoByHash resolves a content address to its local record.
func (s *VideoInfoService) GetVideoByHash(hash string) (*VideoDetail, error) {
	video, err := db.GetVideoByHash(s.ctx, hash)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetVideoByHash failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	return s.buildDetail(video)
}

func (s *VideoInfoService) buildDetail(video *model.Video) (*VideoDetail, error) {
	owner, err := userdb.QueryUserByID(s.ctx, video.UserID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.QueryUserByID failed: %v", err)
		return nil, errno.UnavailableErr
	}

	comments, err := interaction.NewCommentService(s.ctx).ListComments(video.VideoID)
	if err != nil {
		return nil, err
	}
	likes, err := interaction.NewLikeActionService(s.ctx).ListLikes(video.VideoID, 0)
	if err != nil {
		return nil, err
	}
	dislikes, err := interaction.NewDislikeActionService(s.ctx).ListDislikes(video.VideoID, 0)
	if err != nil {
		return nil, err
	}
	reports, err := interaction.NewReportService(s.ctx).ListReports(video.VideoID, 0)
	if err != nil {
		return nil, err
	}
	counts, err := interaction.GetVideoCounts(s.ctx, video.VideoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "count interactions failed: %v", err)
		return nil, errno.UnavailableErr
	}

	detail := &VideoDetail{
		VideoID:    video.VideoID,
		Hash:       video.Hash,
		Caption:    video.Caption,
		Tags:       video.TagList(),
		CreatedAt:  video.CreatedAt,
		UpdatedAt:  video.UpdatedAt,
		Comments:   comments,
		Likes:      likes,
		Dislikes:   dislikes,
		Reports:    reports,
		Count:      counts,
		AccessURLs: ipfs.URLs(video.Hash),
	}
	if owner != nil {
		detail.User = owner.Info()
	}
	return detail, nil
}
