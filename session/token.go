package session

import (
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// NewToken wraps a raw session token. When the token is a JWT its exp claim is
// copied to Expiry; the signature is not verified, the console does that.
func NewToken(raw string) *oauth2.Token {
	token := &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return token
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		token.Expiry = exp.Time
	}
	return token
}
