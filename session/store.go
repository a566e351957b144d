package session

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
)

// TokenKey is the key the console session token is stored under.
const TokenKey = "console_token"

// ErrTokenNotFound is returned when no token is stored under a key.
var ErrTokenNotFound = errors.New("session token not found")

// ErrTokenExpired is returned when storing a token whose expiry has passed.
var ErrTokenExpired = errors.New("session token expired")

// Store is a pluggable persistence layer for session tokens.
// The in-memory default is fine for tests and one-shot CLI runs.
type Store interface {
	AddToken(ctx context.Context, key string, token *oauth2.Token) error
	LookupToken(ctx context.Context, key string) (*oauth2.Token, error)
}

type memoryStore struct {
	mu     sync.RWMutex
	tokens map[string]*oauth2.Token
}

func (m *memoryStore) LookupToken(ctx context.Context, key string) (*oauth2.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if token, ok := m.tokens[key]; ok {
		return token, nil
	}
	return nil, ErrTokenNotFound
}

func (m *memoryStore) AddToken(ctx context.Context, key string, token *oauth2.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[key] = token
	return nil
}

// NewMemoryStore creates a Store holding tokens in process memory.
func NewMemoryStore() Store {
	return &memoryStore{tokens: map[string]*oauth2.Token{}}
}
