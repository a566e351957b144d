package credential

// Credentials are read once at submission time and never persisted.
type Credentials struct {
	Email    string `validate:"required,signin_email"`
	Password string
	// RememberMe mirrors the form toggle. The login request currently always
	// asks to be remembered, whatever this says.
	RememberMe bool
}

// Outcome is the result of a submitted login.
type Outcome struct {
	Success bool
	// Token is the session token when Success.
	Token string
	// Message is the server message when not Success.
	Message string
}
