package navigation

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/signin/internal/logging"
)

// Navigator changes the current location.
type Navigator interface {
	// Replace swaps the current in-app route for path without adding history.
	Replace(ctx context.Context, path string) error
	// Redirect leaves the application for an absolute URL.
	Redirect(ctx context.Context, URL string) error
}

// Opener hands an external URL to something able to display it.
type Opener interface {
	Open(ctx context.Context, URL string) error
}

// Router keeps the in-app route and delegates external navigation to an Opener.
type Router struct {
	mux     sync.RWMutex
	current string
	opener  Opener
	log     *logrus.Entry
}

// Current returns the current in-app route.
func (r *Router) Current() string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.current
}

// Replace sets the current route; path must be absolute.
func (r *Router) Replace(ctx context.Context, path string) error {
	if path == "" || path[0] != '/' {
		return fmt.Errorf("invalid route %q: expected absolute path", path)
	}
	r.mux.Lock()
	r.current = path
	r.mux.Unlock()
	r.log.WithFields(logrus.Fields{"func": "Replace", "route": path}).Debug("route replaced")
	return nil
}

// Redirect hands an absolute URL to the opener.
func (r *Router) Redirect(ctx context.Context, URL string) error {
	u, err := url.Parse(URL)
	if err != nil {
		return fmt.Errorf("invalid redirect url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid redirect url %q: expected absolute url", URL)
	}
	r.log.WithFields(logrus.Fields{"func": "Redirect", "redirect_to": URL}).Debug("redirecting")
	return r.opener.Open(ctx, URL)
}

// RouterOption configures a Router.
type RouterOption func(r *Router)

// WithOpener sets the external URL opener.
func WithOpener(opener Opener) RouterOption {
	return func(r *Router) {
		r.opener = opener
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) RouterOption {
	return func(r *Router) {
		r.log = log
	}
}

// NewRouter creates a Router positioned at initial. Without an opener external
// URLs are opened in the system browser.
func NewRouter(initial string, options ...RouterOption) *Router {
	ret := &Router{current: initial, opener: &Browser{}}
	for _, opt := range options {
		opt(ret)
	}
	if ret.log == nil {
		ret.log = logging.Discard()
	}
	return ret
}
