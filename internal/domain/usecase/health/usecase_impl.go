package health

import (
	"context"
	"strconv"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/redis"
)

type healthUseCase struct {
	providerURL string
	apiKeySet   bool
	redisClient *redis.Client
	weather     weather.UseCase
}

// NewHealthUseCase creates the health check. redisClient is nil when the cache is disabled.
func NewHealthUseCase(providerURL string, apiKey string, redisClient *redis.Client, weatherUseCase weather.UseCase) UseCase {
	return &healthUseCase{
		providerURL: providerURL,
		apiKeySet:   apiKey != "",
		redisClient: redisClient,
		weather:     weatherUseCase,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	providerHealth := useCase.providerHealth()
	cacheHealth := useCase.cacheHealth(ctx)
	stateHealth := useCase.stateHealth()

	overallStatus := model.StatusUp
	if providerHealth.Status == model.StatusDown || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Provider: providerHealth,
		Cache:    cacheHealth,
		State:    stateHealth,
	}
}

func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	status := model.StatusUp
	if !useCase.apiKeySet {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"baseUrl":          useCase.providerURL,
			"apiKeyConfigured": strconv.FormatBool(useCase.apiKeySet),
		},
	}
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.redisClient == nil {
		return model.ComponentHealthStatus{Status: model.StatusDisabled, Details: map[string]string{}}
	}

	check := useCase.redisClient.HealthCheck(ctx)
	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}

// stateHealth reports the last fetch. A failed fetch is not a health failure,
// the next refresh may succeed.
func (useCase *healthUseCase) stateHealth() model.ComponentHealthStatus {
	state, ok := useCase.weather.State()
	if !ok {
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{"status": "NONE"}}
	}

	details := map[string]string{
		"status":     string(state.Status),
		"generation": strconv.FormatUint(state.Generation, 10),
	}
	if state.Err != nil {
		details["error"] = state.Err.Error()
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
