package weather

import (
	"errors"
	"sync"
	"testing"
	"time"

	"weather-app/internal/domain/model"
)

func TestStateStoreRejectsStaleResults(t *testing.T) {
	store := NewStateStore(nil)

	if _, ok := store.Current(); ok {
		t.Fatal("state present before first fetch")
	}

	first := store.Begin()
	second := store.Begin()

	if store.Commit(first, &model.WeatherView{TempLabel: "old"}) {
		t.Error("stale commit accepted")
	}
	if store.Fail(first, errors.New("late failure")) {
		t.Error("stale failure accepted")
	}
	if state, _ := store.Current(); state.Status != StatusLoading || state.Generation != second {
		t.Fatalf("state = %+v, want loading generation %d", state, second)
	}

	if !store.Commit(second, &model.WeatherView{TempLabel: "new"}) {
		t.Fatal("newest commit rejected")
	}
	state, ok := store.Current()
	if !ok || state.Status != StatusLoaded || state.View.TempLabel != "new" {
		t.Errorf("state = %+v", state)
	}
}

func TestStateStoreFail(t *testing.T) {
	store := NewStateStore(nil)
	generation := store.Begin()
	cause := errors.New("offline")

	if !store.Fail(generation, cause) {
		t.Fatal("failure rejected")
	}
	state, _ := store.Current()
	if state.Status != StatusFailed || !errors.Is(state.Err, cause) || state.View != nil {
		t.Errorf("state = %+v", state)
	}
}

type recorder struct {
	mu     sync.Mutex
	states []State
	seen   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan struct{}, 64)}
}

func (r *recorder) listen(state State) {
	r.mu.Lock()
	r.states = append(r.states, state)
	r.mu.Unlock()
	r.seen <- struct{}{}
}

func (r *recorder) wait(t *testing.T, n int) []State {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.seen:
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d of %d transitions", i, n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	dispatcher := NewDispatcher()
	defer dispatcher.Close()

	rec := newRecorder()
	dispatcher.Subscribe(rec.listen)

	store := NewStateStore(dispatcher)
	first := store.Begin()
	second := store.Begin()
	store.Commit(first, &model.WeatherView{})
	store.Commit(second, &model.WeatherView{})

	states := rec.wait(t, 3)
	want := []struct {
		status     Status
		generation uint64
	}{
		{StatusLoading, first},
		{StatusLoading, second},
		{StatusLoaded, second},
	}
	for i, w := range want {
		if states[i].Status != w.status || states[i].Generation != w.generation {
			t.Errorf("transition %d = %s/%d, want %s/%d", i, states[i].Status, states[i].Generation, w.status, w.generation)
		}
	}

	select {
	case <-rec.seen:
		t.Error("stale transition was delivered")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDispatcherSingleGoroutine(t *testing.T) {
	dispatcher := NewDispatcher()

	var mu sync.Mutex
	active, maxActive, calls := 0, 0, 0
	dispatcher.Subscribe(func(State) {
		mu.Lock()
		active++
		calls++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatcher.Post(State{Status: StatusLoading})
		}()
	}
	wg.Wait()
	dispatcher.Close()

	mu.Lock()
	defer mu.Unlock()
	if calls != 20 {
		t.Errorf("calls = %d, want 20", calls)
	}
	if maxActive != 1 {
		t.Errorf("listeners ran concurrently: %d", maxActive)
	}

	dispatcher.Post(State{})
	dispatcher.Close()
}
