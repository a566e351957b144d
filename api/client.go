package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs/url"
	"github.com/viant/signin/internal/logging"
)

const maxBodySize = 1 << 20

// ErrUnexpectedResponse is returned when a response does not have the expected shape.
var ErrUnexpectedResponse = errors.New("unexpected response")

// Client talks to the console API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// BaseURL returns the API prefix all endpoints are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login posts credentials to /login. A decodable body is returned whatever the
// status code, since rejected logins are reported in the body.
func (c *Client) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	URL := url.Join(c.baseURL, "login")
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")

	log := c.log.WithFields(logrus.Fields{"func": "Login", "url": URL})
	status, data, err := c.do(httpRequest)
	if err != nil {
		log.Debug(err.Error())
		return nil, err
	}
	response := &LoginResponse{}
	if err = json.Unmarshal(data, response); err != nil || response.Result == "" {
		log.WithFields(logrus.Fields{"status": status}).Debug("login response not recognized")
		return nil, fmt.Errorf("login: %w: status %d", ErrUnexpectedResponse, status)
	}
	log.WithFields(logrus.Fields{"status": status, "result": response.Result}).Debug("login response")
	return response, nil
}

// OAuthLogin asks the console for the authorization URL of provider.
func (c *Client) OAuthLogin(ctx context.Context, provider string) (*OAuthResponse, error) {
	if strings.TrimSpace(provider) == "" {
		return nil, errors.New("oauth login: provider was empty")
	}
	URL := url.Join(c.baseURL, "oauth/login/"+neturl.PathEscape(provider))
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Accept", "application/json")

	log := c.log.WithFields(logrus.Fields{"func": "OAuthLogin", "url": URL, "provider": provider})
	status, data, err := c.do(httpRequest)
	if err != nil {
		log.Debug(err.Error())
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.WithFields(logrus.Fields{"status": status}).Debug("oauth login rejected")
		return nil, fmt.Errorf("oauth login %v: %w: status %d", provider, ErrUnexpectedResponse, status)
	}
	response := &OAuthResponse{}
	if err = json.Unmarshal(data, response); err != nil || response.RedirectURL == "" {
		log.WithFields(logrus.Fields{"status": status}).Debug("oauth response not recognized")
		return nil, fmt.Errorf("oauth login %v: %w: missing redirect_url", provider, ErrUnexpectedResponse)
	}
	return response, nil
}

func (c *Client) do(request *http.Request) (int, []byte, error) {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer response.Body.Close()
	data, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return response.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return response.StatusCode, data, nil
}

// New creates a client for the API rooted at baseURL (e.g. http://host/console/api).
func New(baseURL string, options ...Option) *Client {
	ret := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.log == nil {
		ret.log = logging.Discard()
	}
	return ret
}
