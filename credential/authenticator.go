package credential

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/viant/signin/api"
	"github.com/viant/signin/internal/logging"
	"github.com/viant/signin/navigation"
	"github.com/viant/signin/notify"
	"github.com/viant/signin/session"
	"github.com/viant/signin/state"
)

// DefaultHomePath is the route shown after a successful login.
const DefaultHomePath = "/apps"

// LoginClient submits credential logins.
type LoginClient interface {
	Login(ctx context.Context, request *api.LoginRequest) (*api.LoginResponse, error)
}

// Authenticator runs credential logins.
type Authenticator struct {
	client     LoginClient
	store      session.Store
	navigator  navigation.Navigator
	notifier   notify.Notifier
	dispatcher Dispatcher
	homePath   string
	busy       atomic.Bool
	log        *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	// applyMux serializes applying a login result with Close.
	applyMux sync.Mutex
	closed   bool
}

// Busy reports whether a submission is outstanding; the submit affordance
// should be disabled while it is.
func (a *Authenticator) Busy() bool {
	return a.busy.Load()
}

// Submit validates credentials and logs in. Every failure is also reported to
// the notifier; the returned error lets the caller tell them apart:
// *ValidationError, ErrBusy, ErrClosed, *AuthError, or a wrapped
// request/storage error. On success the session token is stored under
// session.TokenKey and the home route replaces the current one.
//
// A result arriving after Close is discarded: nothing is dispatched, notified,
// stored or navigated and ErrClosed is returned.
func (a *Authenticator) Submit(ctx context.Context, credentials Credentials) (*Outcome, error) {
	log := a.log.WithFields(logrus.Fields{"func": "Submit"})
	if a.isClosed() {
		return nil, ErrClosed
	}
	if err := credentials.Validate(); err != nil {
		log.Debug(err.Error())
		a.notifier.Notify(ctx, notify.Error(notify.KeyEmailInvalid))
		return nil, err
	}
	if !a.busy.CompareAndSwap(false, true) {
		log.Debug("submission already outstanding")
		return nil, ErrBusy
	}
	defer a.busy.Store(false)

	a.applyMux.Lock()
	if a.closed {
		a.applyMux.Unlock()
		return nil, ErrClosed
	}
	a.dispatch(state.StartCredential())
	a.applyMux.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(a.ctx, cancel)
	defer stop()

	request := &api.LoginRequest{
		Email:      credentials.Email,
		Password:   credentials.Password,
		RememberMe: true,
	}
	response, err := a.client.Login(ctx, request)

	a.applyMux.Lock()
	defer a.applyMux.Unlock()
	if a.closed {
		log.Debug("authenticator closed, result discarded")
		return nil, ErrClosed
	}
	if err != nil {
		log.Debug(err.Error())
		a.dispatch(state.FailCredential())
		a.notifier.Notify(ctx, notify.Error(notify.KeyRequestFailed))
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if !response.Succeeded() {
		log.WithFields(logrus.Fields{"result": response.Result}).Debug("login rejected")
		a.dispatch(state.FailCredential())
		a.notifier.Notify(ctx, notify.Error(response.Data))
		return &Outcome{Message: response.Data}, &AuthError{Message: response.Data}
	}

	token := session.NewToken(response.Data)
	if err = a.store.AddToken(ctx, session.TokenKey, token); err != nil {
		log.Debug(err.Error())
		a.notifier.Notify(ctx, notify.Error(notify.KeySessionFailed))
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	log.WithFields(logrus.Fields{"token.length": len(response.Data), "redirect_to": a.homePath}).Debug("logged in")
	outcome := &Outcome{Success: true, Token: response.Data}
	if err = a.navigator.Replace(ctx, a.homePath); err != nil {
		return outcome, fmt.Errorf("failed to navigate to %v: %w", a.homePath, err)
	}
	return outcome, nil
}

// Close tears the authenticator down. An outstanding login is aborted and its
// result discarded; later submissions return ErrClosed.
func (a *Authenticator) Close() {
	a.applyMux.Lock()
	a.closed = true
	a.applyMux.Unlock()
	a.cancel()
}

func (a *Authenticator) isClosed() bool {
	a.applyMux.Lock()
	defer a.applyMux.Unlock()
	return a.closed
}

func (a *Authenticator) dispatch(action state.Action) {
	if a.dispatcher != nil {
		a.dispatcher.Dispatch(action)
	}
}

// New creates an Authenticator.
func New(client LoginClient, store session.Store, navigator navigation.Navigator, notifier notify.Notifier, options ...Option) *Authenticator {
	ret := &Authenticator{
		client:    client,
		store:     store,
		navigator: navigator,
		notifier:  notifier,
		homePath:  DefaultHomePath,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.log == nil {
		ret.log = logging.Discard()
	}
	ret.ctx, ret.cancel = context.WithCancel(context.Background())
	return ret
}
