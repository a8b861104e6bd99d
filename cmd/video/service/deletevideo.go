package service

import (
	"context"

	"speakup/cmd/model"
	"speakup/cmd/video/dal/db"
	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type DeleteVideoService struct {
	ctx context.Context
}

func NewDeleteVideoService(ctx context.Context) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx}
}

// DeleteVideo removes the record only when the caller owns it: NotFound
// for an absent id, Forbidden for someone else's video. Dependent
// comment/like/dislike/report rows cascade in the same transaction; the
// media bytes stay on the IPFS network.
func (s *DeleteVideoService) DeleteVideo(callerID, videoID int64) (*model.Video, error) {
	video, err := db.GetVideoByID(s.ctx, videoID)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetVideoByID failed: %v", err)
		return nil, errno.UnavailableErr
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	if video.UserID != callerID {
		return nil, errno.ForbiddenErr.WithMessage("You can only delete your own videos")
	}

	if err := db.DeleteVideoTx(s.ctx, videoID); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.DeleteVideoTx failed: %v", err)
		return nil, errno.UnavailableErr
	}
	return video, nil
}
