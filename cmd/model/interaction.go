package model

// Like and Dislike rows assert a reaction by their existence. The unique
// (user_id, video_id) pair is the whole key: the store itself rejects a
// second row for the same pair, so a race between two writers cannot
// leave duplicates.
type Like struct {
	LikeID    int64  `gorm:"column:like_id;primaryKey;autoIncrement" json:"like_id"`
	UserID    int64  `gorm:"column:user_id;uniqueIndex:uk_like_user_video" json:"user_id"`
	VideoID   int64  `gorm:"column:video_id;uniqueIndex:uk_like_user_video" json:"video_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

type Dislike struct {
	DislikeID int64  `gorm:"column:dislike_id;primaryKey;autoIncrement" json:"dislike_id"`
	UserID    int64  `gorm:"column:user_id;uniqueIndex:uk_dislike_user_video" json:"user_id"`
	VideoID   int64  `gorm:"column:video_id;uniqueIndex:uk_dislike_user_video" json:"video_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (Dislike) TableName() string {
	return "dislikes"
}

// Report carries a free-text reason; at most one per (user, video) pair,
// and the reason is never updated after the fact.
type Report struct {
	ReportID  int64  `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
	UserID    int64  `gorm:"column:user_id;uniqueIndex:uk_report_user_video" json:"user_id"`
	VideoID   int64  `gorm:"column:video_id;uniqueIndex:uk_report_user_video" json:"video_id"`
	Reason    string `gorm:"column:reason" json:"reason"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

type Comment struct {
	CommentID int64  `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	UserID    int64  `gorm:"column:user_id;index" json:"user_id"`
	VideoID   int64  `gorm:"column:video_id;index" json:"video_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// ReactionCount aggregates the per-video interaction tallies.
type ReactionCount struct {
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Reports  int64 `json:"reports"`
}
