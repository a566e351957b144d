package session

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/oauth2"
)

// FileStore persists tokens to a JSON document at URL. Any afs supported
// location works (local path, file://, mem://, cloud storage).
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	tokens map[string]*oauth2.Token
}

// NewFileStore creates a Store persisting at URL. The document is read on
// first use.
func NewFileStore(URL string) *FileStore {
	return &FileStore{URL: URL, fs: afs.New()}
}

func (f *FileStore) LookupToken(ctx context.Context, key string) (*oauth2.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(ctx); err != nil {
		return nil, err
	}
	if t, ok := f.tokens[key]; ok {
		return t, nil
	}
	return nil, ErrTokenNotFound
}

func (f *FileStore) AddToken(ctx context.Context, key string, token *oauth2.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(ctx); err != nil {
		return err
	}
	f.tokens[key] = token
	return f.save(ctx)
}

// ---- persistence ----

type fileSnapshot struct {
	Tokens map[string]*oauth2.Token `json:"tokens"`
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(fileSnapshot{Tokens: f.tokens}, "", "  ")
	if err != nil {
		return err
	}
	return f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data))
}

func (f *FileStore) load(ctx context.Context) error {
	if f.tokens != nil {
		return nil
	}
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		f.tokens = map[string]*oauth2.Token{}
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	f.tokens = snap.Tokens
	if f.tokens == nil {
		f.tokens = map[string]*oauth2.Token{}
	}
	return nil
}
