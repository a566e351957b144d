package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

// RedisStore keeps tokens in redis under Prefix+key. Tokens with a known
// expiry are stored with a matching TTL; an already expired token is refused
// and removes the entry.
type RedisStore struct {
	client redis.Cmdable
	Prefix string
}

// NewRedisStore creates a Store keeping tokens in client under prefix.
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{client: client, Prefix: prefix}
}

func (r *RedisStore) AddToken(ctx context.Context, key string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if !token.Expiry.IsZero() {
		if ttl = time.Until(token.Expiry); ttl <= 0 {
			if err = r.client.Del(ctx, r.Prefix+key).Err(); err != nil {
				return err
			}
			return ErrTokenExpired
		}
	}
	return r.client.Set(ctx, r.Prefix+key, data, ttl).Err()
}

func (r *RedisStore) LookupToken(ctx context.Context, key string) (*oauth2.Token, error) {
	data, err := r.client.Get(ctx, r.Prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	token := &oauth2.Token{}
	if err = json.Unmarshal(data, token); err != nil {
		return nil, err
	}
	return token, nil
}
