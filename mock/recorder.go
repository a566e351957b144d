package mock

import (
	"context"
	"sync"

	"github.com/viant/signin/navigation"
	"github.com/viant/signin/notify"
)

// Navigator records navigation instead of performing it.
type Navigator struct {
	// Err is returned by every call when set.
	Err       error
	mux       sync.Mutex
	routes    []string
	redirects []string
}

func (n *Navigator) Replace(ctx context.Context, path string) error {
	n.mux.Lock()
	defer n.mux.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.routes = append(n.routes, path)
	return nil
}

func (n *Navigator) Redirect(ctx context.Context, URL string) error {
	n.mux.Lock()
	defer n.mux.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.redirects = append(n.redirects, URL)
	return nil
}

// Routes returns replaced in-app routes.
func (n *Navigator) Routes() []string {
	n.mux.Lock()
	defer n.mux.Unlock()
	return append([]string(nil), n.routes...)
}

// Redirects returns external navigation targets.
func (n *Navigator) Redirects() []string {
	n.mux.Lock()
	defer n.mux.Unlock()
	return append([]string(nil), n.redirects...)
}

// Notifier records messages.
type Notifier struct {
	mux      sync.Mutex
	messages []notify.Message
}

func (n *Notifier) Notify(ctx context.Context, message notify.Message) {
	n.mux.Lock()
	defer n.mux.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns the recorded messages.
func (n *Notifier) Messages() []notify.Message {
	n.mux.Lock()
	defer n.mux.Unlock()
	return append([]notify.Message(nil), n.messages...)
}

var (
	_ navigation.Navigator = (*Navigator)(nil)
	_ notify.Notifier      = (*Notifier)(nil)
)
