package constants

import "time"

const (
	DataFormate = "2006-01-02 15:04:05"

	MinPasswordLen = 6
	BcryptCost     = 12

	TokenTTL = 7 * 24 * time.Hour

	MaxVideoSize = 100 * 1024 * 1024

	MaxUsernameAttempts = 50

	DefaultPageSize = 30
)
