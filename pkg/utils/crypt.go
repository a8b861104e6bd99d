package utils

import (
	"speakup/pkg/constants"

	"golang.org/x/crypto/bcrypt"
)

// Crypt hashes the password with bcrypt. The produced string embeds the
// salt and cost, so verification needs nothing besides the hash itself.
func Crypt(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	return string(hashedPassword), err
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
