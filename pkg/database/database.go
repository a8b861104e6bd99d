package database

import (
	"strings"

	"speakup/cmd/model"
	"speakup/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open dials the configured store: MySQL when an address is configured,
// otherwise a local SQLite file. TranslateError is on so unique-constraint
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func Open() (*gorm.DB, error) {
	cfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	}

	if config.ConfigInfo.Mysql.Addr == "" {
		path := config.ConfigInfo.Sqlite.Path
		if path == "" {
			path = "speakup.db"
		}
		logrus.Infof("Connecting to SQLite database at %s", path)
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, err
		}
		return db, Migrate(db)
	}

	dsn := GetMysqlDsn()
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}
	return db, Migrate(db)
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Dislike{},
		&model.Comment{},
		&model.Report{},
	)
}

func GetMysqlDsn() string {
	charset := config.ConfigInfo.Mysql.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + charset + "&parseTime=true&loc=Local"}, "")
}
