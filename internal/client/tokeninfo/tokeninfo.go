// Package tokeninfo reads claims from JWT session tokens for display.
// Nothing here verifies a signature; validity is decided by the API.
package tokeninfo

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what the CLI shows about a token.
type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry earlier than now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect decodes the claims of token. ok is false for opaque tokens.
func Inspect(token string) (Info, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, false
	}

	var info Info
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if sub, ok := claims["user_id"]; ok && info.Subject == "" {
		if s, ok := sub.(string); ok {
			info.Subject = s
		}
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
