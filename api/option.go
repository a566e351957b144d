package api

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type Option func(*Client)

// WithHTTPClient sets http client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets logger
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		c.log = log
	}
}
