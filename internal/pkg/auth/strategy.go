package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Identity is the authenticated principal carried inside a session token.
type Identity struct {
	UserID int64
	Role   string
}

// Strategy issues and verifies session tokens carrying an Identity.
type Strategy interface {
	IssueToken(id Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
