package db

import (
	"context"
	"testing"
	"time"

	"speakup/cmd/model"
	"speakup/pkg/constants"
)

func TestCreateAndListComments(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := int64(1); i <= 3; i++ {
		comment := &model.Comment{
			CommentID: i,
			UserID:    i,
			VideoID:   100,
			Content:   "comment",
			CreatedAt: base.Add(time.Duration(i) * time.Minute).Format(constants.DataFormate),
		}
		if err := CreateComment(ctx, comment); err != nil {
			t.Fatalf("CreateComment failed: %v", err)
		}
	}

	comments, err := ListComments(ctx, 100)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	// newest first
	if comments[0].CommentID != 3 || comments[2].CommentID != 1 {
		t.Errorf("comments out of order: %d, %d, %d",
			comments[0].CommentID, comments[1].CommentID, comments[2].CommentID)
	}

	count, err := GetVideoCommentCount(ctx, 100)
	if err != nil {
		t.Fatalf("GetVideoCommentCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}

	none, err := ListComments(ctx, 999)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no comments for unknown video, got %d", len(none))
	}
}
