// Package authfunc resolves the bearer credential on inbound requests.
// Resolution is local-only: the token payload is self-sufficient for its
// lifetime and no store lookup or revocation list is consulted.
package authfunc

import (
	"context"
	"strings"

	"speakup/pkg/errno"
	"speakup/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	identityUserIDKey   = "identity_user_id"
	identityUserNameKey = "identity_user_name"
)

// Identify extracts the Authorization: Bearer credential when present and
// attaches the verified identity to the request context. A missing,
// malformed or expired token leaves the request anonymous instead of
// failing it; each route decides whether anonymous is acceptable.
func Identify() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		auth := string(c.GetHeader("Authorization"))
		if strings.HasPrefix(auth, "Bearer ") {
			if identity, ok := jwt.Verify(strings.TrimPrefix(auth, "Bearer ")); ok {
				c.Set(identityUserIDKey, identity.UserID)
				c.Set(identityUserNameKey, identity.UserName)
			}
		}
		c.Next(ctx)
	}
}

// RequireAuth rejects requests that resolved to anonymous.
func RequireAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if _, ok := CurrentIdentity(c); !ok {
			e := errno.AuthorizationFailedErr
			c.JSON(errno.HTTPStatus(e), map[string]interface{}{
				"code":    e.ErrCode,
				"message": e.ErrMsg,
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

// CurrentIdentity returns the authenticated identity attached by
// Identify, or ok=false for an anonymous request.
func CurrentIdentity(c *app.RequestContext) (*jwt.Identity, bool) {
	userID, exists := c.Get(identityUserIDKey)
	if !exists {
		return nil, false
	}
	id, ok := userID.(int64)
	if !ok {
		return nil, false
	}
	return &jwt.Identity{
		UserID:   id,
		UserName: c.GetString(identityUserNameKey),
	}, true
}
