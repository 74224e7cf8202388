package weather

import (
	"context"

	"go.uber.org/zap"

	"weather-app/pkg/log"
	"weather-app/pkg/metrics"
	"weather-app/pkg/msg"
)

// NewTransitionRecorder returns a listener that logs every accepted transition and
// counts it on collector, which may be nil.
func NewTransitionRecorder(collector *metrics.Collector) Listener {
	return func(state State) {
		collector.RecordTransition(string(state.Status))
		if state.Status == StatusLoading {
			collector.SetGeneration(state.Generation)
		}

		fields := []zap.Field{
			zap.String("status", string(state.Status)),
			zap.Uint64("generation", state.Generation),
		}
		if state.Err != nil {
			fields = append(fields, zap.Error(state.Err))
		}
		log.Debug(msg.GetMessage("weather.state.transition", state.Status, state.Generation), fields...)
	}
}

// Await collects Loaded and Failed transitions delivered by the dispatcher. Create it
// before starting the fetch so no transition is missed.
type Await struct {
	resolved chan State
}

// NewAwait registers the waiting listener on useCase.
func NewAwait(useCase UseCase) *Await {
	a := &Await{resolved: make(chan State, 16)}
	useCase.Subscribe(func(state State) {
		if state.Status == StatusLoading {
			return
		}
		select {
		case a.resolved <- state:
		default:
		}
	})
	return a
}

// Wait blocks until generation resolves or ctx is done.
func (a *Await) Wait(ctx context.Context, generation uint64) (State, error) {
	for {
		select {
		case state := <-a.resolved:
			if state.Generation == generation {
				return state, nil
			}
		case <-ctx.Done():
			return State{}, ctx.Err()
		}
	}
}
