package mock

import (
	"encoding/json"
	"net/http"

	"github.com/viant/signin/api"
)

// defaultLoginHandler handles /login requests
func (s *ConsoleService) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	request := &api.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		http.Error(w, "Invalid login request", http.StatusBadRequest)
		return
	}
	s.mux.Lock()
	s.lastLogin = request
	s.mux.Unlock()

	password, ok := s.Accounts.Get(request.Email)
	if !ok || password != request.Password {
		writeJSON(w, http.StatusOK, &api.LoginResponse{Result: "error", Data: "invalid credentials"})
		return
	}
	token, err := s.createJWT(request.Email)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, &api.LoginResponse{Result: api.ResultSuccess, Data: token})
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
