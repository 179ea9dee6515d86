package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

// ErrUnauthorized is returned when an API key is missing, unknown or inactive.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUserNotFound is returned for unknown users.
var ErrUserNotFound = fault.NotFound("user not found")

// APIKeyInfo holds the identity bound to a validated API key. Every key
// belongs to one cashier of one store.
type APIKeyInfo struct {
	ID      string
	KeyHash string
	Name    string
	StoreID string
	UserID  string
}

// User is a store employee operating the register.
type User struct {
	ID      string
	StoreID string
	Name    string
	Email   string
	Role    string
}

// Repository provides lookup of API keys by their HMAC hash and of users.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*APIKeyInfo, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

// HashKey returns the hex HMAC-SHA256 of an API key under pepper.
func HashKey(key string, pepper []byte) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}
