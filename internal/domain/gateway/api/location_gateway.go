package api

import (
	"context"

	"weather-app/internal/domain/entity"
)

// LocationGateway resolves the position of the caller
type LocationGateway interface {
	// Locate returns the location of the public address the request originates from
	Locate(ctx context.Context) (*entity.Location, error)
}
