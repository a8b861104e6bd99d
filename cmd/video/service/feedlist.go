package service

import (
	"context"

	"speakup/cmd/interaction/dal/db"
	"speakup/cmd/model"
	userdb "speakup/cmd/user/dal/db"
	videodb "speakup/cmd/video/dal/db"
	"speakup/pkg/constants"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// FeedItem is one entry of the browse feed: the video, its owner's safe
// projection, the interaction tallies and the gateway URLs for playback.
type FeedItem struct {
	VideoID   int64                `json:"id"`
	Hash      string               `json:"hash"`
	Caption   string               `json:"caption"`
	Tags      []string             `json:"tags"`
	User      *model.UserInfo      `json:"user"`
	CreatedAt string               `json:"created_at"`
	Count     *model.ReactionCount `json:"count"`
	AccessURLs ipfs.AccessURLs     `json:"access_urls"`
}

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

func (s *FeedListService) FeedList(page int) ([]*FeedItem, error) {
	if page < 1 {
		page = 1
	}
	videos, err := videodb.ListVideos(s.ctx, constants.DefaultPageSize, (page-1)*constants.DefaultPageSize)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.ListVideos failed: %v", err)
		return nil, errno.UnavailableErr
	}

	videoIDs := make([]int64, 0, len(videos))
	userIDs := make([]int64, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.VideoID)
		userIDs = append(userIDs, v.UserID)
	}

	users, err := userdb.QueryUsersByIDs(s.ctx, userIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.QueryUsersByIDs failed: %v", err)
		return nil, errno.UnavailableErr
	}

	likeCounts, err := db.CountByVideoIDs(s.ctx, &model.Like{}, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "count likes failed: %v", err)
		return nil, errno.UnavailableErr
	}
	dislikeCounts, err := db.CountByVideoIDs(s.ctx, &model.Dislike{}, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "count dislikes failed: %v", err)
		return nil, errno.UnavailableErr
	}
	commentCounts, err := db.CountByVideoIDs(s.ctx, &model.Comment{}, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "count comments failed: %v", err)
		return nil, errno.UnavailableErr
	}
	reportCounts, err := db.CountByVideoIDs(s.ctx, &model.Report{}, videoIDs)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "count reports failed: %v", err)
		return nil, errno.UnavailableErr
	}

	items := make([]*FeedItem, 0, len(videos))
	for _, v := range videos {
		item := &FeedItem{
			VideoID:   v.VideoID,
			Hash:      v.Hash,
			Caption:   v.Caption,
			Tags:      v.TagList(),
			CreatedAt: v.CreatedAt,
			Count: &model.ReactionCount{
				Likes:    likeCounts[v.VideoID],
				Dislikes: dislikeCounts[v.VideoID],
				Comments: commentCounts[v.VideoID],
				Reports:  reportCounts[v.VideoID],
			},
			AccessURLs: ipfs.URLs(v.Hash),
		}
		if u, ok := users[v.UserID]; ok {
			item.User = u.Info()
		}
		items = append(items, item)
	}
	return items, nil
}
