package oauth

import "github.com/sirupsen/logrus"

type Option func(*Coordinator)

// WithLogger sets logger
func WithLogger(log *logrus.Entry) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// WithErrorHandler sets a callback receiving every failed attempt, after the
// flag was cleared and the user notified.
func WithErrorHandler(handler func(err *InitiationError)) Option {
	return func(c *Coordinator) {
		c.onError = handler
	}
}
