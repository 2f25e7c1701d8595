package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken      = errors.New("invalid table token")
	ErrWrongPassphrase   = errors.New("wrong table passphrase")
	ErrPassphraseMissing = errors.New("table passphrase required")
)

// TableClaims bind a websocket join to one table.
type TableClaims struct {
	TableID string `json:"table_id"`
	jwt.RegisteredClaims
}

// IssueTableToken signs a token that lets its holder drive tableID until ttl passes.
func IssueTableToken(secret, tableID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TableClaims{
		TableID: tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tableID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign table token: %w", err)
	}
	return signed, nil
}

// ParseTableToken validates token and returns the table it was issued for.
func ParseTableToken(secret, token string) (string, error) {
	var claims TableClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.TableID == "" {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.TableID, nil
}

// HashPassphrase returns the bcrypt hash of a private table passphrase.
// An empty passphrase hashes to "" and marks the table public.
func HashPassphrase(passphrase string) (string, error) {
	if passphrase == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

// CheckPassphrase verifies passphrase against a stored hash. Public tables
// ("" hash) accept anything.
func CheckPassphrase(hash, passphrase string) error {
	if hash == "" {
		return nil
	}
	if passphrase == "" {
		return ErrPassphraseMissing
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)); err != nil {
		return ErrWrongPassphrase
	}
	return nil
}
