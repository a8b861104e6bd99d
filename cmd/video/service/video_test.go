package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	interactiondb "speakup/cmd/interaction/dal/db"
	"speakup/cmd/model"
	userdb "speakup/cmd/user/dal/db"
	videodb "speakup/cmd/video/dal/db"
	"speakup/pkg/constants"
	"speakup/pkg/database"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	videodb.DB = db
	userdb.DB = db
	interactiondb.DB = db
	ipfs.Init("http://pin.test")
}

func seedUser(t *testing.T, id int64, name string) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	err := userdb.CreateUser(context.Background(), &model.User{
		UserID: id, UserName: name, Password: "x", CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func wantErrCode(t *testing.T, err error, code int64) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if got := errno.ConvertErr(err).ErrCode; got != code {
		t.Fatalf("expected error code %d, got %d (%v)", code, got, err)
	}
}

func TestPublishVideoValidatesHash(t *testing.T) {
	setupTestDB(t)
	svc := NewPublishVideoService(context.Background())

	_, err := svc.PublishVideo(1, "", "caption", nil)
	wantErrCode(t, err, errno.ParamErrCode)

	_, err = svc.PublishVideo(1, "not-a-cid", "caption", nil)
	wantErrCode(t, err, errno.ParamErrCode)
}

func TestPublishVideo(t *testing.T) {
	setupTestDB(t)
	svc := NewPublishVideoService(context.Background())

	video, err := svc.PublishVideo(1, "QmPublishHash", "my clip", []string{" nepal ", "", "protest"})
	if err != nil {
		t.Fatalf("PublishVideo failed: %v", err)
	}
	if video.VideoID == 0 {
		t.Error("video has no id")
	}
	if video.Tags != "nepal,protest" {
		t.Errorf("tags not cleaned: %q", video.Tags)
	}
}

func TestPublishVideoDuplicateHash(t *testing.T) {
	setupTestDB(t)
	svc := NewPublishVideoService(context.Background())

	if _, err := svc.PublishVideo(1, "QmSameHash", "first", nil); err != nil {
		t.Fatalf("PublishVideo failed: %v", err)
	}
	_, err := svc.PublishVideo(2, "QmSameHash", "second", nil)
	wantErrCode(t, err, errno.ConflictCode)
}

func TestDeleteVideoOwnership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	video, err := NewPublishVideoService(ctx).PublishVideo(1, "QmOwnedHash", "mine", nil)
	if err != nil {
		t.Fatalf("PublishVideo failed: %v", err)
	}

	svc := NewDeleteVideoService(ctx)

	_, err = svc.DeleteVideo(2, video.VideoID)
	wantErrCode(t, err, errno.ForbiddenCode)

	_, err = svc.DeleteVideo(1, 99999)
	wantErrCode(t, err, errno.NotFoundCode)

	deleted, err := svc.DeleteVideo(1, video.VideoID)
	if err != nil {
		t.Fatalf("DeleteVideo by owner failed: %v", err)
	}
	if deleted.VideoID != video.VideoID {
		t.Errorf("deleted the wrong video: %d", deleted.VideoID)
	}
}

func TestDeleteVideoCascades(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	video, err := NewPublishVideoService(ctx).PublishVideo(1, "QmCascadeHash", "doomed", nil)
	if err != nil {
		t.Fatalf("PublishVideo failed: %v", err)
	}

	if err := interactiondb.AddLike(ctx, 2, video.VideoID); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}
	if err := interactiondb.AddDislike(ctx, 3, video.VideoID); err != nil {
		t.Fatalf("AddDislike failed: %v", err)
	}
	now := time.Now().Format(constants.DataFormate)
	err = interactiondb.CreateReport(ctx, &model.Report{
		UserID: 2, VideoID: video.VideoID, Reason: "spam", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	err = interactiondb.CreateComment(ctx, &model.Comment{
		CommentID: 1, UserID: 2, VideoID: video.VideoID, Content: "bye", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if _, err := NewDeleteVideoService(ctx).DeleteVideo(1, video.VideoID); err != nil {
		t.Fatalf("DeleteVideo failed: %v", err)
	}

	gone, err := videodb.GetVideoByID(ctx, video.VideoID)
	if err != nil {
		t.Fatalf("GetVideoByID failed: %v", err)
	}
	if gone != nil {
		t.Error("video row survived the delete")
	}

	likes, _ := interactiondb.GetVideoLikeCount(ctx, video.VideoID)
	dislikes, _ := interactiondb.GetVideoDislikeCount(ctx, video.VideoID)
	comments, _ := interactiondb.GetVideoCommentCount(ctx, video.VideoID)
	reports, _ := interactiondb.GetVideoReportCount(ctx, video.VideoID)
	if likes+dislikes+comments+reports != 0 {
		t.Errorf("dependent rows survived: likes=%d dislikes=%d comments=%d reports=%d",
			likes, dislikes, comments, reports)
	}
}

func TestFeedList(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")

	for i := 0; i < 3; i++ {
		_, err := NewPublishVideoService(ctx).PublishVideo(1, fmt.Sprintf("QmFeedHash%d", i), fmt.Sprintf("clip %d", i), nil)
		if err != nil {
			t.Fatalf("PublishVideo %d failed: %v", i, err)
		}
	}
	videos, err := videodb.ListVideos(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	if err := interactiondb.AddLike(ctx, 2, videos[0].VideoID); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}

	items, err := NewFeedListService(ctx).FeedList(1)
	if err != nil {
		t.Fatalf("FeedList failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 feed items, got %d", len(items))
	}
	if items[0].User == nil || items[0].User.UserName != "creator" {
		t.Errorf("feed item missing owner projection: %+v", items[0])
	}
	if items[0].Count.Likes != 1 {
		t.Errorf("expected 1 like on the newest video, got %d", items[0].Count.Likes)
	}
	if items[0].AccessURLs.Primary == "" {
		t.Error("feed item missing access URLs")
	}
}

func TestVideoInfoIncludesInteractions(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedUser(t, 2, "viewer")

	video, err := NewPublishVideoService(ctx).PublishVideo(1, "QmDetailHash", "detail", nil)
	if err != nil {
		t.Fatalf("PublishVideo failed: %v", err)
	}
	if err := interactiondb.AddLike(ctx, 2, video.VideoID); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}

	detail, err := NewVideoInfoService(ctx).GetVideoInfo(video.VideoID)
	if err != nil {
		t.Fatalf("GetVideoInfo failed: %v", err)
	}
	if detail.Count == nil || detail.Count.Likes != 1 {
		t.Errorf("detail missing like count: %+v", detail.Count)
	}

	byHash, err := NewVideoInfoService(ctx).GetVideoByHash("QmDetailHash")
	if err != nil {
		t.Fatalf("GetVideoByHash failed: %v", err)
	}
	if byHash.VideoID != video.VideoID {
		t.Errorf("hash lookup resolved the wrong video")
	}

	_, err = NewVideoInfoService(ctx).GetVideoInfo(99999)
	wantErrCode(t, err, errno.NotFoundCode)
}
