package service

import (
	"context"
	"strings"
	"time"

	"speakup/cmd/model"
	"speakup/cmd/video/dal/db"
	"speakup/pkg/constants"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"
	"speakup/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PublishVideoService struct {
	ctx context.Context
}

func NewPublishVideoService(ctx context.Context) *PublishVideoService {
	return &PublishVideoService{ctx: ctx}
}

// PublishVideo records a pinned hash as a new video owned by userID. The
// hash must already exist on the pinning service; only the cheap prefix
// check happens here.
func (s *PublishVideoService) PublishVideo(userID int64, hash, caption string, tags []string) (*model.Video, error) {
	if hash == "" {
		return nil, errno.ParamErr.WithMessage("IPFS hash is required. Use /api/videos/upload to upload video files.")
	}
	if !ipfs.ValidHash(hash) {
		return nil, errno.ParamErr.WithMessage(`Invalid IPFS hash format. Hash should start with "Qm" or "bafyb".`)
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoID:   utils.GenerateID(),
		UserID:    userID,
		Hash:      hash,
		Caption:   caption,
		Tags:      strings.Join(cleaned, ","),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateVideo(s.ctx, video); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("A video with this hash already exists")
		}
		hlog.CtxErrorf(s.ctx, "dao.CreateVideo failed: %v", err)
		return nil, errno.UnavailableErr
	}
	return video, nil
}
