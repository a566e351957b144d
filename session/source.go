package session

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenSource returns a source yielding the token stored under key.
func TokenSource(ctx context.Context, store Store, key string) (oauth2.TokenSource, error) {
	token, err := store.LookupToken(ctx, key)
	if err != nil {
		return nil, err
	}
	return oauth2.StaticTokenSource(token), nil
}

// HTTPClient returns a client authorizing requests with the token stored under key.
func HTTPClient(ctx context.Context, store Store, key string) (*http.Client, error) {
	source, err := TokenSource(ctx, store, key)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, source), nil
}
