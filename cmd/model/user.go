package model

// User is the account row. Password only ever holds the bcrypt hash.
type User struct {
	UserID    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string `gorm:"column:user_name;size:191;uniqueIndex:uk_user_name" json:"username"`
	Password  string `gorm:"column:password" json:"-"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserInfo is the safe projection of a user embedded in responses.
type UserInfo struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"username"`
}

func (u *User) Info() *UserInfo {
	return &UserInfo{UserID: u.UserID, UserName: u.UserName}
}
