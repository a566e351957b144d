package state

import "sync"

// Listener observes a dispatched action together with the state before and
// after it. Listeners run on the dispatching goroutine while the dispatch lock
// is held: they must not call Dispatch synchronously.
type Listener func(prev, next State, action Action)

// Store is the single owner of State.
type Store struct {
	dispatchMux sync.Mutex
	mux         sync.RWMutex
	state       State
	listeners   map[int]Listener
	order       []int
	seq         int
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	if initial.OAuthInFlight == nil {
		initial.OAuthInFlight = map[string]bool{}
	}
	return &Store{state: initial, listeners: map[int]Listener{}}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state.Clone()
}

// Dispatch applies action and notifies listeners in subscription order.
// Dispatches are applied one at a time in call order.
func (s *Store) Dispatch(action Action) State {
	s.dispatchMux.Lock()
	defer s.dispatchMux.Unlock()

	s.mux.Lock()
	prev := s.state
	next, err := reduce(prev, action)
	if err != nil {
		s.mux.Unlock()
		panic(err)
	}
	s.state = next
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mux.Unlock()

	for _, listener := range listeners {
		listener(prev.Clone(), next.Clone(), action)
	}
	return next.Clone()
}

// Subscribe registers listener and returns a function removing it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.seq++
	id := s.seq
	s.listeners[id] = listener
	s.order = append(s.order, id)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mux.Lock()
			defer s.mux.Unlock()
			delete(s.listeners, id)
			for i, candidate := range s.order {
				if candidate == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// reduce converts a Reduce panic into a value so the store lock can be
// released before the panic resumes.
func reduce(s State, action Action) (next State, err *ProgrammingError) {
	defer func() {
		if r := recover(); r != nil {
			if pErr, ok := r.(*ProgrammingError); ok {
				err = pErr
				return
			}
			panic(r)
		}
	}()
	return Reduce(s, action), nil
}
