package oauth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/viant/signin/api"
	"github.com/viant/signin/internal/logging"
	"github.com/viant/signin/navigation"
	"github.com/viant/signin/notify"
	"github.com/viant/signin/state"
)

// Initiator starts an authorization with a provider.
type Initiator interface {
	OAuthLogin(ctx context.Context, provider string) (*api.OAuthResponse, error)
}

// Coordinator drives the OAuth sign-in of one provider.
type Coordinator struct {
	provider  string
	store     *state.Store
	client    Initiator
	navigator navigation.Navigator
	notifier  notify.Notifier
	onError   func(err *InitiationError)
	log       *logrus.Entry

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	// applyMux serializes applying results with Close; lifecycleMux guards
	// closed and task registration and is never held while dispatching.
	applyMux     sync.Mutex
	lifecycleMux sync.Mutex
	closed       bool
	tasks        sync.WaitGroup
}

// Provider returns the provider id.
func (c *Coordinator) Provider() string {
	return c.provider
}

// InFlight reports the provider flag; the provider button should be disabled
// while it is set.
func (c *Coordinator) InFlight() bool {
	return c.store.State().InFlight(c.provider)
}

// Start is the user intent to sign in with the provider. Starting while a
// request is outstanding issues another request.
func (c *Coordinator) Start() error {
	if c.isClosed() {
		return ErrClosed
	}
	c.store.Dispatch(state.StartOAuth(c.provider))
	return nil
}

// Wait blocks until every spawned request has resolved.
func (c *Coordinator) Wait() {
	c.tasks.Wait()
}

// Close tears the coordinator down. It stops watching the store and aborts
// outstanding requests; their results are discarded.
func (c *Coordinator) Close() {
	c.applyMux.Lock()
	c.lifecycleMux.Lock()
	if c.closed {
		c.lifecycleMux.Unlock()
		c.applyMux.Unlock()
		return
	}
	c.closed = true
	c.lifecycleMux.Unlock()
	c.applyMux.Unlock()

	c.unsubscribe()
	c.cancel()
}

func (c *Coordinator) isClosed() bool {
	c.lifecycleMux.Lock()
	defer c.lifecycleMux.Unlock()
	return c.closed
}

func (c *Coordinator) onAction(_, next state.State, action state.Action) {
	if action.Method != state.MethodOAuth || action.Kind != state.KindStart || action.Provider != c.provider {
		return
	}
	if !next.InFlight(c.provider) {
		return
	}
	c.lifecycleMux.Lock()
	if c.closed {
		c.lifecycleMux.Unlock()
		return
	}
	c.tasks.Add(1)
	c.lifecycleMux.Unlock()
	go c.run(uuid.NewString())
}

func (c *Coordinator) run(attemptID string) {
	defer c.tasks.Done()
	log := c.log.WithFields(logrus.Fields{"func": "run", "provider": c.provider, "attempt.id": attemptID})
	log.Debug("requesting authorization")
	response, err := c.client.OAuthLogin(c.ctx, c.provider)

	c.applyMux.Lock()
	defer c.applyMux.Unlock()
	if c.isClosed() {
		log.Debug("coordinator closed, result discarded")
		return
	}
	if err != nil {
		c.fail(log, err)
		return
	}
	log.WithFields(logrus.Fields{"redirect_to": response.RedirectURL}).Debug("Redirecting")
	if err = c.navigator.Redirect(c.ctx, response.RedirectURL); err != nil {
		c.fail(log, err)
	}
}

func (c *Coordinator) fail(log *logrus.Entry, err error) {
	log.Debug(err.Error())
	c.store.Dispatch(state.FailOAuth(c.provider))
	c.notifier.Notify(c.ctx, notify.Error(notify.KeyOAuthFailed))
	if c.onError != nil {
		c.onError(&InitiationError{Provider: c.provider, Err: err})
	}
}

// New creates a coordinator for provider watching store.
func New(provider string, store *state.Store, client Initiator, navigator navigation.Navigator, notifier notify.Notifier, options ...Option) *Coordinator {
	ret := &Coordinator{
		provider:  provider,
		store:     store,
		client:    client,
		navigator: navigator,
		notifier:  notifier,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.log == nil {
		ret.log = logging.Discard()
	}
	ret.ctx, ret.cancel = context.WithCancel(context.Background())
	ret.unsubscribe = store.Subscribe(ret.onAction)
	return ret
}
