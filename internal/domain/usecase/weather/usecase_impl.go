package weather

import (
	"context"
	"time"

	"github.com/google/uuid"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/pkg/log"
	"weather-app/pkg/metrics"
	"weather-app/pkg/msg"
)

type weatherUseCase struct {
	gateway      api.WeatherGateway
	builder      forecast.ViewBuilder
	forecastDays int
	store        *StateStore
	dispatcher   *Dispatcher
	metrics      *metrics.Collector
	now          func() time.Time
}

// Options configures the weather use case. Zero values fall back to defaults.
type Options struct {
	ForecastDays int
	Builder      forecast.ViewBuilder
	Dispatcher   *Dispatcher
	Metrics      *metrics.Collector
	Now          func() time.Time
}

func NewWeatherUseCase(gateway api.WeatherGateway, opts Options) UseCase {
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = forecast.DefaultDailyLimit
	}
	if opts.Builder.Window == (forecast.Window{}) {
		opts.Builder.Window = forecast.DefaultWindow()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = NewDispatcher()
	}
	opts.Dispatcher.Subscribe(NewTransitionRecorder(opts.Metrics))
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &weatherUseCase{
		gateway:      gateway,
		builder:      opts.Builder,
		forecastDays: opts.ForecastDays,
		store:        NewStateStore(opts.Dispatcher),
		dispatcher:   opts.Dispatcher,
		metrics:      opts.Metrics,
		now:          opts.Now,
	}
}

// GetWeather fetches current conditions and the forecast in parallel, commits the
// result to the state store and returns the display view
func (uc *weatherUseCase) GetWeather(ctx context.Context, coords entity.Coordinates) (*model.WeatherView, error) {
	generation := uc.store.Begin()
	return uc.load(ctx, generation, coords)
}

// Refresh starts a fetch in the background and returns its generation
func (uc *weatherUseCase) Refresh(ctx context.Context, coords entity.Coordinates) uint64 {
	generation := uc.store.Begin()
	go func() {
		_, _ = uc.load(context.WithoutCancel(ctx), generation, coords)
	}()
	return generation
}

func (uc *weatherUseCase) State() (State, bool) {
	return uc.store.Current()
}

func (uc *weatherUseCase) Subscribe(listener Listener) {
	uc.dispatcher.Subscribe(listener)
}

func (uc *weatherUseCase) load(ctx context.Context, generation uint64, coords entity.Coordinates) (*model.WeatherView, error) {
	fetchID := uuid.NewString()
	start := uc.now()
	log.Info(msg.GetMessage("weather.fetch.start", coords, fetchID))

	pair, err := FetchPair(ctx, uc.gateway, coords, uc.forecastDays, uc.metrics)
	if err != nil {
		log.Error(msg.GetMessage("weather.fetch.fail", coords, fetchID, err))
		uc.checkStale(generation, uc.store.Fail(generation, err))
		return nil, err
	}

	view := uc.builder.Build(pair.Current, pair.Forecast, coords, uc.now())
	uc.recordDropped(view.Stats)
	log.Info(msg.GetMessage("weather.fetch.success", coords, uc.now().Sub(start), fetchID))

	uc.checkStale(generation, uc.store.Commit(generation, &view))
	return &view, nil
}

// checkStale reports a result the store rejected. Accepted transitions are
// recorded by the dispatcher listener.
func (uc *weatherUseCase) checkStale(generation uint64, accepted bool) {
	if accepted {
		return
	}
	log.Warn(msg.GetMessage("weather.state.stale", generation, uc.store.Generation()))
	uc.metrics.RecordTransition("STALE")
}

func (uc *weatherUseCase) recordDropped(stats model.WindowStats) {
	if stats.DroppedHours == 0 && stats.UnparseableDays == 0 {
		return
	}
	uc.metrics.RecordDropped("hour", stats.DroppedHours)
	uc.metrics.RecordDropped("day", stats.UnparseableDays)
	log.Debug(msg.GetMessage("weather.window.dropped", stats.DroppedHours+stats.UnparseableDays))
}
