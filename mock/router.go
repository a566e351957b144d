package mock

import (
	"net/http"
	"strings"
)

const oauthLoginPrefix = "/oauth/login/"

// Handler routes HTTP requests to the mock console endpoints.
type Handler struct {
	Service *ConsoleService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Service.record(r.URL.Path)
	switch {
	case r.URL.Path == "/login":
		if h.Service.LoginHandler != nil {
			h.Service.LoginHandler(w, r)
		} else {
			h.Service.defaultLoginHandler(w, r)
		}
	case strings.HasPrefix(r.URL.Path, oauthLoginPrefix):
		provider := strings.TrimPrefix(r.URL.Path, oauthLoginPrefix)
		if h.Service.OAuthHandler != nil {
			h.Service.OAuthHandler(w, r, provider)
		} else {
			h.Service.defaultOAuthHandler(w, r, provider)
		}
	default:
		http.NotFound(w, r)
	}
}
