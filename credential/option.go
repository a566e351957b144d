package credential

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/signin/state"
)

type Option func(*Authenticator)

// WithHomePath sets the route replaced after a successful login
func WithHomePath(path string) Option {
	return func(a *Authenticator) {
		a.homePath = path
	}
}

// WithDispatcher reports attempts to a state store
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(a *Authenticator) {
		a.dispatcher = dispatcher
	}
}

// WithLogger sets logger
func WithLogger(log *logrus.Entry) Option {
	return func(a *Authenticator) {
		a.log = log
	}
}

// Dispatcher accepts state actions.
type Dispatcher interface {
	Dispatch(action state.Action) state.State
}
