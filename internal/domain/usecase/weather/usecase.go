package weather

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

type UseCase interface {
	// GetWeather fetches current conditions and the forecast in parallel, commits the
	// result to the state store and returns the display view
	GetWeather(ctx context.Context, coords entity.Coordinates) (*model.WeatherView, error)

	// Refresh starts a fetch in the background and returns its generation
	Refresh(ctx context.Context, coords entity.Coordinates) uint64

	// State returns the latest committed state, false before the first fetch
	State() (State, bool)

	// Subscribe registers a listener for state transitions
	Subscribe(listener Listener)
}
