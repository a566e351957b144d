package mock

import (
	"net/http"
	"sync"
	"time"

	"github.com/viant/signin/api"
	"github.com/viant/signin/internal/collection"
)

// ConsoleService is a mock console API.
type ConsoleService struct {
	Secret []byte
	// Accounts maps email to password.
	Accounts *collection.SyncMap[string, string]
	// Providers maps provider id to its authorization endpoint.
	Providers *collection.SyncMap[string, string]
	TokenTTL  time.Duration
	// LoginHandler and OAuthHandler replace the default endpoint handlers when set.
	LoginHandler func(w http.ResponseWriter, r *http.Request)
	OAuthHandler func(w http.ResponseWriter, r *http.Request, provider string)

	mux       sync.Mutex
	requests  []string
	lastLogin *api.LoginRequest
}

// Option configures a ConsoleService.
type Option func(s *ConsoleService)

// WithAccount registers an account.
func WithAccount(email, password string) Option {
	return func(s *ConsoleService) {
		s.Accounts.Put(email, password)
	}
}

// WithProvider registers an OAuth provider and its authorization endpoint.
func WithProvider(provider, authorizeURL string) Option {
	return func(s *ConsoleService) {
		s.Providers.Put(provider, authorizeURL)
	}
}

// Requests returns the request paths received so far, in order.
func (s *ConsoleService) Requests() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]string(nil), s.requests...)
}

// Count returns how many requests were received for path.
func (s *ConsoleService) Count(path string) int {
	count := 0
	for _, candidate := range s.Requests() {
		if candidate == path {
			count++
		}
	}
	return count
}

// LastLogin returns the last decoded login request body.
func (s *ConsoleService) LastLogin() *api.LoginRequest {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.lastLogin
}

func (s *ConsoleService) record(path string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.requests = append(s.requests, path)
}

// Register registers the mock endpoints onto mux.
func (s *ConsoleService) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Service: s})
}

// Handler returns an http.Handler for all mock endpoints.
func (s *ConsoleService) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// NewConsoleService creates a mock console with the GitHub and Google providers.
func NewConsoleService(opts ...Option) *ConsoleService {
	service := &ConsoleService{
		Secret:    []byte("mock-console-secret"),
		Accounts:  collection.NewSyncMap[string, string](),
		Providers: collection.NewSyncMap[string, string](),
		TokenTTL:  time.Hour,
	}
	service.Providers.Put("github", "https://github.com/login/oauth/authorize")
	service.Providers.Put("google", "https://accounts.google.com/o/oauth2/v2/auth")
	for _, opt := range opts {
		opt(service)
	}
	return service
}
