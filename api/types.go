package api

// ResultSuccess is the login result discriminant for an accepted login.
const ResultSuccess = "success"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse carries a session token in Data on success, otherwise a human
// readable error message.
type LoginResponse struct {
	Result string `json:"result"`
	Data   string `json:"data"`
}

// Succeeded reports whether the login was accepted.
func (r *LoginResponse) Succeeded() bool {
	return r.Result == ResultSuccess
}

// OAuthResponse is the body returned by GET /oauth/login/{provider}.
type OAuthResponse struct {
	RedirectURL string `json:"redirect_url"`
}
