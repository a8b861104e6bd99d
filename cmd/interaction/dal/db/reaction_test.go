package db

import (
	"context"
	"fmt"
	"testing"

	"speakup/cmd/model"
	"speakup/pkg/database"

	"github.com/pkg/errors"
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
	DB = db
}

func TestLikeCrossover(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := AddDislike(ctx, 1, 100); err != nil {
		t.Fatalf("AddDislike failed: %v", err)
	}
	if err := AddLike(ctx, 1, 100); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}

	liked, err := LikeExists(ctx, 1, 100)
	if err != nil {
		t.Fatalf("LikeExists failed: %v", err)
	}
	if !liked {
		t.Error("like missing after crossover")
	}
	disliked, err := DislikeExists(ctx, 1, 100)
	if err != nil {
		t.Fatalf("DislikeExists failed: %v", err)
	}
	if disliked {
		t.Error("dislike survived the crossover")
	}
}

func TestDislikeCrossover(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := AddLike(ctx, 1, 100); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}
	if err := AddDislike(ctx, 1, 100); err != nil {
		t.Fatalf("AddDislike failed: %v", err)
	}

	liked, _ := LikeExists(ctx, 1, 100)
	if liked {
		t.Error("like survived the crossover")
	}
	disliked, _ := DislikeExists(ctx, 1, 100)
	if !disliked {
		t.Error("dislike missing after crossover")
	}
}

func TestAddLikeDuplicate(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := AddLike(ctx, 1, 100); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}
	err := AddLike(ctx, 1, 100)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	count, err := GetVideoLikeCount(ctx, 100)
	if err != nil {
		t.Fatalf("GetVideoLikeCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 like row, got %d", count)
	}
}

func TestRemoveLike(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := AddLike(ctx, 1, 100); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}

	removed, err := RemoveLike(ctx, 1, 100)
	if err != nil {
		t.Fatalf("RemoveLike failed: %v", err)
	}
	if !removed {
		t.Error("RemoveLike reported nothing removed")
	}

	removed, err = RemoveLike(ctx, 1, 100)
	if err != nil {
		t.Fatalf("RemoveLike failed: %v", err)
	}
	if removed {
		t.Error("RemoveLike removed a row twice")
	}
}

func TestListLikesFilters(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	pairs := []struct{ user, video int64 }{
		{1, 100}, {1, 200}, {2, 100},
	}
	for _, p := range pairs {
		if err := AddLike(ctx, p.user, p.video); err != nil {
			t.Fatalf("AddLike(%d,%d) failed: %v", p.user, p.video, err)
		}
	}

	all, err := ListLikes(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListLikes failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 likes, got %d", len(all))
	}

	byVideo, err := ListLikes(ctx, 100, 0)
	if err != nil {
		t.Fatalf("ListLikes failed: %v", err)
	}
	if len(byVideo) != 2 {
		t.Errorf("expected 2 likes on video 100, got %d", len(byVideo))
	}

	byBoth, err := ListLikes(ctx, 100, 2)
	if err != nil {
		t.Fatalf("ListLikes failed: %v", err)
	}
	if len(byBoth) != 1 || byBoth[0].UserID != 2 {
		t.Errorf("unexpected filtered result: %+v", byBoth)
	}
}

func TestCountByVideoIDs(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for user := int64(1); user <= 3; user++ {
		if err := AddLike(ctx, user, 100); err != nil {
			t.Fatalf("AddLike failed: %v", err)
		}
	}
	if err := AddLike(ctx, 1, 200); err != nil {
		t.Fatalf("AddLike failed: %v", err)
	}

	counts, err := CountByVideoIDs(ctx, &model.Like{}, []int64{100, 200, 300})
	if err != nil {
		t.Fatalf("CountByVideoIDs failed: %v", err)
	}
	if counts[100] != 3 || counts[200] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[300]; ok {
		t.Error("video with no likes appeared in the count map")
	}

	empty, err := CountByVideoIDs(ctx, &model.Like{}, nil)
	if err != nil {
		t.Fatalf("CountByVideoIDs failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty map, got %v", empty)
	}
}
