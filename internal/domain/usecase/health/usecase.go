package health

import (
	"context"

	"weather-app/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
