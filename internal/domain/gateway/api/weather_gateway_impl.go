package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
)

const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	format     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// format selects the provider's json or xml resources, json when empty.
func NewWeatherGateway(baseUrl string, apiKey string, format string, clientOptions http.ClientOptions) (WeatherGateway, error) {
	switch format {
	case "":
		format = FormatJSON
	case FormatJSON, FormatXML:
	default:
		return nil, fmt.Errorf("unsupported weather format %q", format)
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		format:     format,
	}, nil
}

// GetCurrentWeather gets the current conditions at the coordinates
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/current." + w.format).
		WithQueryParams(w.query(coords)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return toCurrentWeather(successResp.(*external.CurrentWeatherResponse)), nil
	}

	return nil, providerError(status, errResp, err)
}

// GetForecast gets the forecast at the coordinates
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*entity.ForecastResponse, error) {
	query := w.query(coords)
	query["days"] = strconv.Itoa(days)

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast." + w.format).
		WithQueryParams(query).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return toForecast(successResp.(*external.ForecastResponse)), nil
	}

	return nil, providerError(status, errResp, err)
}

func (w *weatherGatewayImpl) query(coords entity.Coordinates) map[string]string {
	return map[string]string{
		"key": w.apiKey,
		"q":   coords.Query(),
	}
}

// providerError prefers the message of a decoded error body over the bare status error.
func providerError(status int, errResp any, err error) error {
	if errResp != nil {
		detail := errResp.(*external.APIErrorResponse).Detail()
		if detail.Message != "" {
			return &ProviderError{Status: status, Code: detail.Code, Message: detail.Message}
		}
	}
	return err
}

// IsProviderError reports whether err carries an error body from the provider.
func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}
