package weather

import "sync"

// Listener receives weather state transitions.
type Listener func(State)

// Dispatcher delivers state transitions to listeners on a single goroutine, in the
// order they were posted. Each transition reaches each listener exactly once.
type Dispatcher struct {
	mu        sync.Mutex
	queue     []State
	listeners []Listener
	closed    bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// NewDispatcher starts the delivery goroutine. Close stops it.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()
	return d
}

// Subscribe registers a listener for transitions posted from now on.
func (d *Dispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Post queues a transition. It never blocks on listeners.
func (d *Dispatcher) Post(state State) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, state)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Close delivers what is already queued and stops the goroutine.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.done)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.wake:
			d.drain()
		case <-d.done:
			d.drain()
			return
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return
		}
		state := d.queue[0]
		d.queue = d.queue[1:]
		listeners := append([]Listener(nil), d.listeners...)
		d.mu.Unlock()

		for _, listener := range listeners {
			listener(state)
		}
	}
}
