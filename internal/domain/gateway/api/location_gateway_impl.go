package api

import (
	"context"
	"fmt"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
)

const geolocationSuccess = "success"

// locationGatewayImpl implements LocationGateway over an ip-api compatible service
type locationGatewayImpl struct {
	httpClient *http.Client
}

func NewLocationGateway(baseUrl string, clientOptions http.ClientOptions) LocationGateway {
	return &locationGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Locate returns the location of the public address the request originates from
func (l *locationGatewayImpl) Locate(ctx context.Context) (*entity.Location, error) {
	successResp, _, _, err := l.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json").
		WithQueryParams(map[string]string{"fields": "status,message,city,regionName,country,lat,lon,timezone"}).
		WithSuccessResp(&external.GeolocationResponse{}).
		Execute()

	if err != nil {
		return nil, err
	}

	response := successResp.(*external.GeolocationResponse)
	if response.Status != geolocationSuccess {
		return nil, fmt.Errorf("geolocation failed: %s", response.Message)
	}

	return &entity.Location{
		Name:    response.City,
		Region:  response.RegionName,
		Country: response.Country,
		Lat:     response.Lat,
		Lon:     response.Lon,
		TzID:    response.Timezone,
	}, nil
}
