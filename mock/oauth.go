package mock

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/viant/signin/api"
)

// defaultOAuthHandler handles /oauth/login/{provider} requests
func (s *ConsoleService) defaultOAuthHandler(w http.ResponseWriter, r *http.Request, provider string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	authorizeURL, ok := s.Providers.Get(provider)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported provider"})
		return
	}
	redirectURL, err := url.Parse(authorizeURL)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	query := redirectURL.Query()
	query.Set("state", uuid.NewString())
	redirectURL.RawQuery = query.Encode()
	writeJSON(w, http.StatusOK, &api.OAuthResponse{RedirectURL: redirectURL.String()})
}
