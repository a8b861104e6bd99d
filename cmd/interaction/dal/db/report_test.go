package db

import (
	"context"
	"testing"
	"time"

	"speakup/cmd/model"
	"speakup/pkg/constants"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func newReport(user, video int64, reason string) *model.Report {
	return &model.Report{
		UserID:    user,
		VideoID:   video,
		Reason:    reason,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
}

func TestCreateReportDuplicate(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := CreateReport(ctx, newReport(1, 100, "spam")); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	err := CreateReport(ctx, newReport(1, 100, "changed my mind"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	report, err := GetReport(ctx, 1, 100)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if report.Reason != "spam" {
		t.Errorf("duplicate attempt changed the stored reason: %q", report.Reason)
	}
}

func TestReportExists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	exists, err := ReportExists(ctx, 1, 100)
	if err != nil {
		t.Fatalf("ReportExists failed: %v", err)
	}
	if exists {
		t.Error("ReportExists true before any report")
	}

	if err := CreateReport(ctx, newReport(1, 100, "abuse")); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	exists, err = ReportExists(ctx, 1, 100)
	if err != nil {
		t.Fatalf("ReportExists failed: %v", err)
	}
	if !exists {
		t.Error("ReportExists false after reporting")
	}
}

func TestListReportsFilters(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := CreateReport(ctx, newReport(1, 100, "spam")); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if err := CreateReport(ctx, newReport(2, 100, "abuse")); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if err := CreateReport(ctx, newReport(1, 200, "spam")); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	byVideo, err := ListReports(ctx, 100, 0)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(byVideo) != 2 {
		t.Errorf("expected 2 reports on video 100, got %d", len(byVideo))
	}

	byUser, err := ListReports(ctx, 0, 1)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("expected 2 reports by user 1, got %d", len(byUser))
	}
}
