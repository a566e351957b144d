package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisStore(rdb, "signin:"), mr
}

func TestStores(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		"redis":  redisStore,
	}
	ctx := context.Background()
	for name, store := range stores {
		_, err := store.LookupToken(ctx, TokenKey)
		assert.True(t, errors.Is(err, ErrTokenNotFound), name)

		require.NoError(t, store.AddToken(ctx, TokenKey, NewToken("tok123")), name)
		token, err := store.LookupToken(ctx, TokenKey)
		require.NoError(t, err, name)
		assert.Equal(t, "tok123", token.AccessToken, name)
		assert.Equal(t, "Bearer", token.TokenType, name)
	}
}

func TestFileStore_Reload(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileStore(URL).AddToken(ctx, TokenKey, NewToken("tok123")))

	token, err := NewFileStore(URL).LookupToken(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token.AccessToken)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	token := &oauth2.Token{AccessToken: "tok123", Expiry: time.Now().Add(time.Minute)}
	require.NoError(t, store.AddToken(ctx, TokenKey, token))
	assert.True(t, mr.TTL("signin:"+TokenKey) > 0)

	mr.FastForward(2 * time.Minute)
	_, err := store.LookupToken(ctx, TokenKey)
	assert.True(t, errors.Is(err, ErrTokenNotFound))

	require.NoError(t, store.AddToken(ctx, TokenKey, NewToken("opaque")))
	assert.Equal(t, time.Duration(0), mr.TTL("signin:"+TokenKey))
}

func TestNewToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("secret"))
	require.NoError(t, err)

	token := NewToken(signed)
	assert.Equal(t, signed, token.AccessToken)
	assert.True(t, token.Expiry.Equal(exp))

	opaque := NewToken("tok123")
	assert.True(t, opaque.Expiry.IsZero())
	assert.True(t, opaque.Valid())
}

func TestHTTPClient(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
	}))
	defer server.Close()

	ctx := context.Background()
	store := NewMemoryStore()
	_, err := HTTPClient(ctx, store, TokenKey)
	assert.True(t, errors.Is(err, ErrTokenNotFound))

	require.NoError(t, store.AddToken(ctx, TokenKey, NewToken("tok123")))
	client, err := HTTPClient(ctx, store, TokenKey)
	require.NoError(t, err)
	response, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = response.Body.Close()
	assert.Equal(t, "Bearer tok123", authorization)
}

func TestRedisStore_ExpiredToken(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.AddToken(ctx, TokenKey, &oauth2.Token{AccessToken: "tok123", Expiry: time.Now().Add(time.Hour)}))
	assert.True(t, mr.Exists("signin:"+TokenKey))

	err := store.AddToken(ctx, TokenKey, &oauth2.Token{AccessToken: "stale", Expiry: time.Now().Add(-time.Hour)})
	assert.True(t, errors.Is(err, ErrTokenExpired))
	assert.False(t, mr.Exists("signin:"+TokenKey))
	_, err = store.LookupToken(ctx, TokenKey)
	assert.True(t, errors.Is(err, ErrTokenNotFound))
}
