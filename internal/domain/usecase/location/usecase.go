package location

import (
	"context"

	"weather-app/internal/domain/entity"
)

type UseCase interface {
	// Resolve returns the coordinates to fetch weather for. It never fails: when
	// location access is disabled or the lookup errors, the fallback is returned.
	Resolve(ctx context.Context) entity.Coordinates

	// Fallback returns the configured fallback location
	Fallback() entity.Location
}
