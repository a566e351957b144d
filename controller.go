package signin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/viant/signin/api"
	"github.com/viant/signin/credential"
	"github.com/viant/signin/internal/collection"
	"github.com/viant/signin/internal/logging"
	"github.com/viant/signin/navigation"
	"github.com/viant/signin/notify"
	"github.com/viant/signin/oauth"
	"github.com/viant/signin/session"
	"github.com/viant/signin/state"
)

var (
	// ErrCredentialLoginDisabled is returned when the email path is not offered.
	ErrCredentialLoginDisabled = errors.New("credential login disabled")
	// ErrUnknownProvider is returned for a provider that is not configured.
	ErrUnknownProvider = errors.New("unknown oauth provider")
)

// Controller glues the sign-in paths to a presentation layer.
type Controller struct {
	config       *Config
	state        *state.Store
	credential   *credential.Authenticator
	coordinators *collection.SyncMap[string, *oauth.Coordinator]
	providers    []string

	navigator  navigation.Navigator
	notifier   notify.Notifier
	store      session.Store
	httpClient *http.Client
	closers    []io.Closer
	log        *logrus.Entry
}

// SubmitCredentials is the intent to log in with email and password.
func (c *Controller) SubmitCredentials(ctx context.Context, credentials credential.Credentials) (*credential.Outcome, error) {
	if c.credential == nil {
		return nil, ErrCredentialLoginDisabled
	}
	return c.credential.Submit(ctx, credentials)
}

// StartOAuth is the intent to sign in with provider.
func (c *Controller) StartOAuth(provider string) error {
	coordinator, ok := c.coordinators.Get(provider)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownProvider, provider)
	}
	return coordinator.Start()
}

// Busy reports whether a credential login is outstanding.
func (c *Controller) Busy() bool {
	return c.credential != nil && c.credential.Busy()
}

// InFlight reports whether provider has an outstanding authorization request.
func (c *Controller) InFlight(provider string) bool {
	return c.state.State().InFlight(provider)
}

// CredentialLoginEnabled reports whether the email path is offered.
func (c *Controller) CredentialLoginEnabled() bool {
	return c.credential != nil
}

// Providers returns the configured provider ids in configuration order,
// without duplicates.
func (c *Controller) Providers() []string {
	return append([]string(nil), c.providers...)
}

// State returns a snapshot of the sign-in state.
func (c *Controller) State() state.State {
	return c.state.State()
}

// Wait blocks until outstanding OAuth requests have resolved.
func (c *Controller) Wait() {
	c.coordinators.Range(func(_ string, coordinator *oauth.Coordinator) bool {
		coordinator.Wait()
		return true
	})
}

// Close tears the sign-in paths down and releases backends the controller
// opened itself. Results of outstanding requests are discarded.
func (c *Controller) Close() error {
	if c.credential != nil {
		c.credential.Close()
	}
	c.coordinators.Range(func(_ string, coordinator *oauth.Coordinator) bool {
		coordinator.Close()
		return true
	})
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *Controller) initStore() {
	if c.store != nil {
		return
	}
	switch {
	case c.config.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
		c.closers = append(c.closers, client)
		c.store = session.NewRedisStore(client, c.config.RedisPrefix)
	case c.config.SessionURL != "":
		c.store = session.NewFileStore(c.config.SessionURL)
	default:
		c.store = session.NewMemoryStore()
	}
}

// New creates a Controller for config.
func New(config *Config, options ...Option) (*Controller, error) {
	if config == nil {
		return nil, errors.New("config was nil")
	}
	ret := &Controller{
		config:       config,
		state:        state.NewStore(state.New()),
		coordinators: collection.NewSyncMap[string, *oauth.Coordinator](),
		httpClient:   http.DefaultClient,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.log == nil {
		ret.log = logging.Discard()
	}
	if ret.notifier == nil {
		ret.notifier = notify.NewLogNotifier(ret.log)
	}
	if ret.navigator == nil {
		ret.navigator = navigation.NewRouter("/signin", navigation.WithLogger(ret.log))
	}
	ret.initStore()

	client := api.New(config.APIURL, api.WithHTTPClient(ret.httpClient), api.WithLogger(ret.log))
	if config.CredentialLoginEnabled() {
		credentialOptions := []credential.Option{credential.WithDispatcher(ret.state), credential.WithLogger(ret.log)}
		if config.HomePath != "" {
			credentialOptions = append(credentialOptions, credential.WithHomePath(config.HomePath))
		}
		ret.credential = credential.New(client, ret.store, ret.navigator, ret.notifier, credentialOptions...)
	}
	for _, provider := range config.Providers {
		if _, ok := ret.coordinators.Get(provider); ok {
			continue
		}
		ret.providers = append(ret.providers, provider)
		ret.coordinators.Put(provider, oauth.New(provider, ret.state, client, ret.navigator, ret.notifier,
			oauth.WithLogger(ret.log.WithFields(logrus.Fields{"provider": provider}))))
	}
	ret.log.WithFields(logrus.Fields{
		"api.url":          config.APIURL,
		"credential_login": ret.credential != nil,
		"providers":        config.Providers,
	}).Debug("sign-in controller ready")
	return ret, nil
}
