package state

import "fmt"

// State tracks outstanding sign-in attempts.
type State struct {
	// CredentialStarted is set once a credential attempt has begun. Failure keeps
	// it set; it does not gate re-entrancy (see credential.Authenticator).
	CredentialStarted bool
	// OAuthInFlight holds the per provider in-flight flag.
	OAuthInFlight map[string]bool
}

// ProgrammingError is the panic value raised by Reduce for an action it does
// not know. It signals a defect in the caller and is never recovered here.
type ProgrammingError struct {
	Action Action
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("state: unknown action %v", e.Action)
}

// New returns the initial state: nothing in flight.
func New() State {
	return State{OAuthInFlight: map[string]bool{}}
}

// InFlight reports whether provider has an outstanding authorization request.
func (s State) InFlight(provider string) bool {
	return s.OAuthInFlight[provider]
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	ret := State{CredentialStarted: s.CredentialStarted, OAuthInFlight: make(map[string]bool, len(s.OAuthInFlight))}
	for k, v := range s.OAuthInFlight {
		ret.OAuthInFlight[k] = v
	}
	return ret
}

// Reduce returns the state that results from applying action to s. It never
// modifies s. An unknown kind, method or an OAuth action without a provider
// panics with *ProgrammingError.
func Reduce(s State, action Action) State {
	next := s.Clone()
	switch action.Method {
	case MethodCredential:
		switch action.Kind {
		case KindStart, KindFail:
			next.CredentialStarted = true
			return next
		}
	case MethodOAuth:
		if action.Provider == "" {
			break
		}
		switch action.Kind {
		case KindStart:
			next.OAuthInFlight[action.Provider] = true
			return next
		case KindFail:
			next.OAuthInFlight[action.Provider] = false
			return next
		}
	}
	panic(&ProgrammingError{Action: action})
}
