package db

import (
	"speakup/pkg/database"

	"gorm.io/gorm"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	DB, err = database.Open()
	if err != nil {
		panic(err)
	}
}
