package signin

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/viant/signin/navigation"
	"github.com/viant/signin/notify"
	"github.com/viant/signin/session"
)

type Option func(*Controller)

// WithNavigator sets navigator
func WithNavigator(navigator navigation.Navigator) Option {
	return func(c *Controller) {
		c.navigator = navigator
	}
}

// WithNotifier sets notifier
func WithNotifier(notifier notify.Notifier) Option {
	return func(c *Controller) {
		c.notifier = notifier
	}
}

// WithStore sets the session token store, overriding the configured one
func WithStore(store session.Store) Option {
	return func(c *Controller) {
		c.store = store
	}
}

// WithHTTPClient sets the client used for console API calls
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) {
		c.httpClient = client
	}
}

// WithLogger sets logger
func WithLogger(log *logrus.Entry) Option {
	return func(c *Controller) {
		c.log = log
	}
}
