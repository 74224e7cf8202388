package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/location"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/msg"
)

type WeatherController struct {
	api             *echo.Group
	useCase         weather.UseCase
	locationUseCase location.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, locationUseCase location.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, locationUseCase: locationUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/weather/state", controller.GetState)
	controller.api.POST("/weather/refresh", controller.Refresh)
}

// GetWeather godoc
// @Summary Get the weather view
// @Description Fetch current conditions and the forecast in parallel and return the hourly and daily display sequences. Without coordinates the caller is located, falling back to the default city.
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude in decimal degrees"
// @Param lon query number false "Longitude in decimal degrees"
// @Success 200 {object} model.WeatherView "Weather view"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 502 {object} model.ErrorResponse "Weather provider failure, retry allowed"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	coords, err := controller.coordinates(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("weather.error.invalid-coordinates")})
	}

	view, err := controller.useCase.GetWeather(c.Request().Context(), coords)
	if err != nil {
		return c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: msg.GetMessage("weather.error.fetch-failed", err), Retry: true})
	}
	return c.JSON(http.StatusOK, view)
}

// GetState godoc
// @Summary Get the latest weather state
// @Description Return the state of the newest fetch: LOADING, LOADED with the view, or FAILED
// @Tags weather
// @Produce json
// @Success 200 {object} model.StateResponse "Loaded"
// @Success 202 {object} model.StateResponse "Loading"
// @Failure 404 {object} model.ErrorResponse "No fetch started yet"
// @Failure 502 {object} model.StateResponse "Failed, retry allowed"
// @Router /weather/state [get]
func (controller *WeatherController) GetState(c echo.Context) error {
	state, ok := controller.useCase.State()
	if !ok {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "no weather loaded yet"})
	}

	response := model.StateResponse{Status: string(state.Status), Generation: state.Generation}
	switch state.Status {
	case weather.StatusLoaded:
		response.View = state.View
		return c.JSON(http.StatusOK, response)
	case weather.StatusFailed:
		response.Error = msg.GetMessage("weather.error.fetch-failed", state.Err)
		response.Retry = true
		return c.JSON(http.StatusBadGateway, response)
	default:
		return c.JSON(http.StatusAccepted, response)
	}
}

// Refresh godoc
// @Summary Refresh the weather in the background
// @Description Start a new fetch generation. Results of older generations are discarded.
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude in decimal degrees"
// @Param lon query number false "Longitude in decimal degrees"
// @Success 202 {object} model.RefreshResponse "Refresh started"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Router /weather/refresh [post]
func (controller *WeatherController) Refresh(c echo.Context) error {
	coords, err := controller.coordinates(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("weather.error.invalid-coordinates")})
	}

	generation := controller.useCase.Refresh(c.Request().Context(), coords)
	return c.JSON(http.StatusAccepted, model.RefreshResponse{Generation: generation, Message: "refresh started"})
}

// coordinates reads lat and lon from the query, or resolves the caller's location
// when both are absent.
func (controller *WeatherController) coordinates(c echo.Context) (entity.Coordinates, error) {
	latParam, lonParam := c.QueryParam("lat"), c.QueryParam("lon")
	if latParam == "" && lonParam == "" {
		return controller.locationUseCase.Resolve(c.Request().Context()), nil
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return entity.Coordinates{}, err
	}
	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return entity.Coordinates{}, err
	}

	coords := entity.Coordinates{Lat: lat, Lon: lon}
	if !coords.Valid() {
		return entity.Coordinates{}, echo.ErrBadRequest
	}
	return coords, nil
}
