package location

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// DefaultFallback is the location used when the caller cannot be located.
var DefaultFallback = entity.Location{Name: "Moscow", Lat: 55.7558, Lon: 37.6173}

type locationUseCase struct {
	gateway  api.LocationGateway
	fallback entity.Location
}

// NewLocationUseCase creates the resolver. A nil gateway means location access is disabled.
func NewLocationUseCase(gateway api.LocationGateway, fallback entity.Location) UseCase {
	coords := entity.Coordinates{Lat: fallback.Lat, Lon: fallback.Lon}
	if fallback.Name == "" || !coords.Valid() {
		fallback = DefaultFallback
	}

	return &locationUseCase{
		gateway:  gateway,
		fallback: fallback,
	}
}

func (uc *locationUseCase) Resolve(ctx context.Context) entity.Coordinates {
	if uc.gateway == nil {
		log.Debug(msg.GetMessage("location.disabled"))
		return uc.fallbackCoordinates()
	}

	location, err := uc.gateway.Locate(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("location.fallback", uc.fallback.Name, err))
		return uc.fallbackCoordinates()
	}

	coords := entity.Coordinates{Lat: location.Lat, Lon: location.Lon}
	if !coords.Valid() {
		log.Warn(msg.GetMessage("location.fallback", uc.fallback.Name, coords))
		return uc.fallbackCoordinates()
	}

	log.Info(msg.GetMessage("location.resolved", location.Name))
	return coords
}

func (uc *locationUseCase) Fallback() entity.Location {
	return uc.fallback
}

func (uc *locationUseCase) fallbackCoordinates() entity.Coordinates {
	return entity.Coordinates{Lat: uc.fallback.Lat, Lon: uc.fallback.Lon}
}
