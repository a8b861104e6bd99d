package service

import (
	"context"

	"speakup/cmd/model"
	userdb "speakup/cmd/user/dal/db"
	videodb "speakup/cmd/video/dal/db"

	"github.com/pkg/errors"
)

// Response shapes for the interaction lists: each row is joined with the
// safe projections of its user and video, mirroring what the read-side
// query contract promises instead of exposing raw rows.

type ReactionItem struct {
	UserID    int64            `json:"user_id"`
	VideoID   int64            `json:"video_id"`
	CreatedAt string           `json:"created_at"`
	User      *model.UserInfo  `json:"user"`
	Video     *model.VideoInfo `json:"video"`
}

type ReportItem struct {
	ReactionItem
	Reason string `json:"reason"`
}

type CommentItem struct {
	CommentID int64            `json:"comment_id"`
	VideoID   int64            `json:"video_id"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
	User      *model.UserInfo  `json:"user"`
	Video     *model.VideoInfo `json:"video"`
}

type refs struct {
	users  map[int64]*model.User
	videos map[int64]*model.Video
}

func (r *refs) userInfo(id int64) *model.UserInfo {
	if u, ok := r.users[id]; ok {
		return u.Info()
	}
	return nil
}

func (r *refs) videoInfo(id int64) *model.VideoInfo {
	if v, ok := r.videos[id]; ok {
		return v.Info()
	}
	return nil
}

// loadRefs batch-fetches the users and videos referenced by a page of
// interaction rows.
func loadRefs(ctx context.Context, userIDs, videoIDs []int64) (*refs, error) {
	users, err := userdb.QueryUsersByIDs(ctx, dedupe(userIDs))
	if err != nil {
		return nil, errors.WithMessage(err, "load user refs")
	}
	videos := make(map[int64]*model.Video)
	for _, id := range dedupe(videoIDs) {
		v, err := videodb.GetVideoByID(ctx, id)
		if err != nil {
			return nil, errors.WithMessage(err, "load video refs")
		}
		if v != nil {
			videos[id] = v
		}
	}
	return &refs{users: users, videos: videos}, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
