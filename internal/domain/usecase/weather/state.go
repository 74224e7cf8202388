package weather

import (
	"sync"

	"weather-app/internal/domain/model"
)

// Status is the variant of a weather State.
type Status string

const (
	StatusLoading Status = "LOADING"
	StatusLoaded  Status = "LOADED"
	StatusFailed  Status = "FAILED"
)

// State is one snapshot of the weather screen. View is set when Loaded, Err when Failed.
type State struct {
	Status     Status
	Generation uint64
	View       *model.WeatherView
	Err        error
}

// StateStore holds the latest weather state. Every fetch is tagged with a generation
// from Begin, and only the newest generation may resolve the state.
type StateStore struct {
	mu         sync.RWMutex
	generation uint64
	state      State
	started    bool
	dispatcher *Dispatcher
}

// NewStateStore creates a store that posts accepted transitions to dispatcher, which may be nil.
func NewStateStore(dispatcher *Dispatcher) *StateStore {
	return &StateStore{dispatcher: dispatcher}
}

// Begin starts a new fetch generation and moves the state to Loading.
func (s *StateStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.started = true
	s.apply(State{Status: StatusLoading, Generation: s.generation})
	return s.generation
}

// Commit resolves generation with a loaded view. It returns false when a newer
// fetch has started since, in which case the state is left untouched.
func (s *StateStore) Commit(generation uint64, view *model.WeatherView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	s.apply(State{Status: StatusLoaded, Generation: generation, View: view})
	return true
}

// Fail resolves generation with an error, with the same staleness rule as Commit.
func (s *StateStore) Fail(generation uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	s.apply(State{Status: StatusFailed, Generation: generation, Err: err})
	return true
}

// Current returns the latest state. False means no fetch was started yet.
func (s *StateStore) Current() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.started
}

// Generation returns the newest generation handed out by Begin.
func (s *StateStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// apply must be called with mu held so transitions reach the dispatcher in order.
func (s *StateStore) apply(state State) {
	s.state = state
	if s.dispatcher != nil {
		s.dispatcher.Post(state)
	}
}
