package model

import "strings"

// Video is the local record of an upload. The media bytes themselves live
// on the IPFS network and outlive this row; deleting a Video never
// touches them.
type Video struct {
	VideoID   int64  `gorm:"column:video_id;primaryKey" json:"id"`
	UserID    int64  `gorm:"column:user_id;index" json:"user_id"`
	Hash      string `gorm:"column:hash;size:191;uniqueIndex:uk_video_hash" json:"hash"`
	Caption   string `gorm:"column:caption" json:"caption"`
	Tags      string `gorm:"column:tags" json:"-"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// TagList splits the stored comma-separated tags.
func (v *Video) TagList() []string {
	if v.Tags == "" {
		return []string{}
	}
	return strings.Split(v.Tags, ",")
}

// VideoInfo is the safe projection of a video embedded in responses.
type VideoInfo struct {
	VideoID int64  `json:"id"`
	Caption string `json:"caption"`
	Hash    string `json:"hash"`
}

func (v *Video) Info() *VideoInfo {
	return &VideoInfo{VideoID: v.VideoID, Caption: v.Caption, Hash: v.Hash}
}
