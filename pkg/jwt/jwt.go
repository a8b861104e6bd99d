package jwt

import (
	"time"

	"speakup/pkg/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Identity is the resolved subject of a verified token.
type Identity struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"username"`
}

type Claims struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies identity tokens with a single HMAC key.
// The key is configuration loaded once at startup; rotating it does not
// invalidate tokens signed before the restart until they expire.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: constants.TokenTTL}
}

// Issue signs a token carrying the identity, expiring after the
// configured lifetime (7 days).
func (m *Manager) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   id.UserID,
		UserName: id.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Verify checks signature and expiry. Any malformed, expired or
// mis-signed token yields (nil, false); callers treat that as anonymous
// and never see why verification failed.
func (m *Manager) Verify(tokenString string) (*Identity, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return &Identity{UserID: claims.UserID, UserName: claims.UserName}, true
}

var std *Manager

// Init sets up the process-wide manager. Called once from main.
func Init(secret string) {
	std = NewManager(secret)
}

func Issue(id Identity) (string, error) {
	return std.Issue(id)
}

func Verify(tokenString string) (*Identity, bool) {
	return std.Verify(tokenString)
}
