package util

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// The session token is a handle on the logged-in email, nothing more. There is
// no password verification anywhere in this service, so the token carries no
// authentication weight; it only lets a client pin its session user across
// requests instead of relying on the shared current-user pointer.

const sessionTokenTTL = 30 * 24 * time.Hour

var (
	jwtSecret     = []byte(os.Getenv("JWTSECRET"))
	jwtSecretLock sync.RWMutex
)

// SetJWTSecret updates the signing secret. Thread-safe; used by tests and at
// startup when the secret comes from config rather than the environment.
func SetJWTSecret(secret string) {
	jwtSecretLock.Lock()
	defer jwtSecretLock.Unlock()
	jwtSecret = []byte(secret)
}

func getJWTSecret() []byte {
	jwtSecretLock.RLock()
	defer jwtSecretLock.RUnlock()
	return append([]byte(nil), jwtSecret...)
}

// IssueSessionToken signs a token whose subject is the session user's email.
func IssueSessionToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ParseSessionToken validates a session token and returns the email it was
// issued for.
func ParseSessionToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return getJWTSecret(), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Subject, nil
}
