package service

import (
	"context"
	"strings"

	"speakup/cmd/model"
	"speakup/pkg/constants"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UploadVideoService struct {
	ctx context.Context
}

func NewUploadVideoService(ctx context.Context) *UploadVideoService {
	return &UploadVideoService{ctx: ctx}
}

// UploadVideo pins the raw bytes on the media host, then records the
// returned hash as a video owned by userID. The bytes are never stored
// locally and never deleted remotely.
func (s *UploadVideoService) UploadVideo(userID int64, data []byte, filename, mimetype, caption string, tags []string) (*model.Video, error) {
	if len(data) == 0 {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}
	if !strings.HasPrefix(mimetype, "video/") {
		return nil, errno.ParamErr.WithMessage("Only video files are allowed")
	}
	if int64(len(data)) > constants.MaxVideoSize {
		return nil, errno.ParamErr.WithMessage("Video file size must be less than 100MB")
	}

	pinned, err := ipfs.Upload(s.ctx, data, filename, mimetype)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "pinning service upload failed: %v", err)
		return nil, errno.UnavailableErr.WithMessage("Failed to upload video to IPFS")
	}

	return NewPublishVideoService(s.ctx).PublishVideo(userID, pinned.IpfsHash, caption, tags)
}
