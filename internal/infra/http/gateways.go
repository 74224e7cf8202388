package http

import (
	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/pkg/http"
	"weather-app/pkg/resource"
)

// WeatherClientOptions builds the provider client options from app.weather.*
func WeatherClientOptions() http.ClientOptions {
	return http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
		DefaultHeaders:    map[string]string{"Accept": "application/json, application/xml"},
		Logger:            NewZapHTTPLogger("weather-provider"),
	}
}

// NewWeatherGateway creates the provider gateway, rate limited when
// app.weather.rate-limit.enabled is set.
func NewWeatherGateway() (api.WeatherGateway, error) {
	gateway, err := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		resource.GetString("app.weather.format"),
		WeatherClientOptions(),
	)
	if err != nil {
		return nil, err
	}

	if resource.GetBool("app.weather.rate-limit.enabled") {
		gateway = api.NewRateLimitedWeatherGateway(
			gateway,
			resource.GetFloat64("app.weather.rate-limit.rps"),
			resource.GetInt("app.weather.rate-limit.burst"),
		)
	}
	return gateway, nil
}

// NewLocationGateway returns nil when app.location.enabled is false.
func NewLocationGateway() api.LocationGateway {
	if !resource.GetBool("app.location.enabled") {
		return nil
	}
	return api.NewLocationGateway(resource.GetString("app.location.base-url"), http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather.connection-timeout"),
		Logger:            NewZapHTTPLogger("geolocation"),
	})
}

// FallbackLocation reads app.location.fallback.*
func FallbackLocation() entity.Location {
	return entity.Location{
		Name: resource.GetString("app.location.fallback.name"),
		Lat:  resource.GetFloat64("app.location.fallback.lat"),
		Lon:  resource.GetFloat64("app.location.fallback.lon"),
	}
}
