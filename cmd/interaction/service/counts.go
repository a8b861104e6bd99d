package service

import (
	"context"

	"speakup/cmd/interaction/dal/db"
	"speakup/cmd/interaction/infras/redis"
	"speakup/cmd/model"

	"github.com/pkg/errors"
)

// GetVideoCounts tallies the four interaction relations for one video,
// going through the counter cache when it is loaded and falling back to
// the store on a miss.
func GetVideoCounts(ctx context.Context, videoID int64) (*model.ReactionCount, error) {
	counts := &model.ReactionCount{}

	kinds := []struct {
		name  string
		dest  *int64
		count func(context.Context, int64) (int64, error)
	}{
		{"likes", &counts.Likes, db.GetVideoLikeCount},
		{"dislikes", &counts.Dislikes, db.GetVideoDislikeCount},
		{"comments", &counts.Comments, db.GetVideoCommentCount},
		{"reports", &counts.Reports, db.GetVideoReportCount},
	}
	for _, k := range kinds {
		if cached, ok := redis.GetVideoCounter(ctx, k.name, videoID); ok {
			*k.dest = cached
			continue
		}
		n, err := k.count(ctx, videoID)
		if err != nil {
			return nil, errors.WithMessagef(err, "count %s", k.name)
		}
		*k.dest = n
		redis.SetVideoCounter(ctx, k.name, videoID, n)
	}
	return counts, nil
}
