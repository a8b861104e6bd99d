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

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points every dal package at one in-memory store so the
// services see a consistent world.
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
	interactiondb.DB = db
	userdb.DB = db
	videodb.DB = db
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

func seedVideo(t *testing.T, id, owner int64) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	err := videodb.CreateVideo(context.Background(), &model.Video{
		VideoID: id, UserID: owner, Hash: fmt.Sprintf("Qm%s%d", t.Name(), id),
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed video %d: %v", id, err)
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

func TestLikeUnknownVideo(t *testing.T) {
	setupTestDB(t)
	err := NewLikeActionService(context.Background()).Like(1, 999)
	wantErrCode(t, err, errno.NotFoundCode)
}

func TestLikeTwiceIsConflict(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "liker")
	seedVideo(t, 100, 2)
	svc := NewLikeActionService(context.Background())

	if err := svc.Like(1, 100); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	wantErrCode(t, svc.Like(1, 100), errno.ConflictCode)
}

func TestLikeCrossoverClearsDislike(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "fickle")
	seedVideo(t, 100, 2)
	ctx := context.Background()

	if err := NewDislikeActionService(ctx).Dislike(1, 100); err != nil {
		t.Fatalf("dislike failed: %v", err)
	}
	if err := NewLikeActionService(ctx).Like(1, 100); err != nil {
		t.Fatalf("like after dislike failed: %v", err)
	}

	counts, err := GetVideoCounts(ctx, 100)
	if err != nil {
		t.Fatalf("GetVideoCounts failed: %v", err)
	}
	if counts.Likes != 1 || counts.Dislikes != 0 {
		t.Errorf("expected 1 like / 0 dislikes after crossover, got %d/%d",
			counts.Likes, counts.Dislikes)
	}
}

func TestUnlikeWithoutLike(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 2)
	err := NewLikeActionService(context.Background()).Unlike(1, 100)
	wantErrCode(t, err, errno.NotFoundCode)
}

func TestReportRequiresReason(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 2)
	svc := NewReportService(context.Background())

	_, err := svc.Report(1, 100, "   ")
	wantErrCode(t, err, errno.ParamErrCode)
}

func TestReportTwiceIsConflict(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "reporter")
	seedVideo(t, 100, 2)
	svc := NewReportService(context.Background())

	first, err := svc.Report(1, 100, "spam")
	if err != nil {
		t.Fatalf("first report failed: %v", err)
	}
	_, err = svc.Report(1, 100, "changed my mind")
	wantErrCode(t, err, errno.ConflictCode)

	items, err := svc.ListReports(100, 0)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(items) != 1 || items[0].Reason != first.Reason {
		t.Errorf("stored report changed after conflicting attempt: %+v", items)
	}
}

func TestCommentOnUnknownVideo(t *testing.T) {
	setupTestDB(t)
	_, err := NewCommentService(context.Background()).CreateComment(1, 999, "hello")
	wantErrCode(t, err, errno.NotFoundCode)
}

func TestCommentsAreUnlimitedPerUser(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "chatty")
	seedVideo(t, 100, 2)
	svc := NewCommentService(context.Background())

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateComment(1, 100, fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("comment %d failed: %v", i, err)
		}
	}

	items, err := svc.ListComments(100)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(items))
	}
	if items[0].User == nil || items[0].User.UserName != "chatty" {
		t.Errorf("comment missing its user projection: %+v", items[0])
	}
}

func TestListLikesJoinsProjections(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "liker")
	seedVideo(t, 100, 2)
	ctx := context.Background()

	if err := NewLikeActionService(ctx).Like(1, 100); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	items, err := NewLikeActionService(ctx).ListLikes(100, 0)
	if err != nil {
		t.Fatalf("ListLikes failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 like, got %d", len(items))
	}
	if items[0].User == nil || items[0].User.UserName != "liker" {
		t.Errorf("missing user projection: %+v", items[0])
	}
	if items[0].Video == nil || items[0].Video.VideoID != 100 {
		t.Errorf("missing video projection: %+v", items[0])
	}
}
