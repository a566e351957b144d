package mock

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createJWT creates a signed session token for email
func (s *ConsoleService) createJWT(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "mock-console",
		"sub": email,
		"exp": now.Add(s.TokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}
