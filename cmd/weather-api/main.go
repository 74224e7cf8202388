package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-app/configs"
	"weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	"weather-app/internal/domain/gateway/cache"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/location"
	"weather-app/internal/domain/usecase/weather"
	infracache "weather-app/internal/infra/cache"
	infrahttp "weather-app/internal/infra/http"
	"weather-app/pkg/log"
	"weather-app/pkg/metrics"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

// @title Weather App API
// @version 1.0
// @description Current conditions and the 48 hour / 7 day forecast window of a location.
// @BasePath /weather-app
func main() {
	log.SetLevel(resource.GetStringOrDefault("app.log-level", configs.Env.LogLevel))
	log.Info(msg.GetMessage("app.start"))
	defer log.Sync()

	apiKey := resource.GetString("app.weather.api-key")
	if apiKey == "" {
		log.Warn(msg.GetMessage("weather.error.missing-api-key"))
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)
	collector := metrics.NewCollector(resource.GetStringOrDefault("app.metrics.namespace", "weather_app"))
	middleware.SetupRequestLogger(e, collector)

	// Init Gateways
	weatherGateway, err := infrahttp.NewWeatherGateway()
	if err != nil {
		log.Fatalf("Failed to create weather gateway: %v", err)
	}

	redisClient, err := infracache.NewRedisClient()
	if err != nil {
		log.Fatalf("Failed to create redis client: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		weatherGateway = cache.NewWeatherCacheGateway(weatherGateway, infracache.NewWeatherCache(redisClient), collector)
	}

	// Init UseCase
	dispatcher := weather.NewDispatcher()
	defer dispatcher.Close()

	builder := forecast.NewViewBuilder(
		forecast.Window{
			HourlyLimit: resource.GetInt("app.display.hourly-limit"),
			DailyLimit:  resource.GetInt("app.display.daily-limit"),
		},
		forecast.ParseLocale(resource.GetString("app.display.locale")),
		time.Local,
	)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, weather.Options{
		ForecastDays: resource.GetInt("app.weather.forecast-days"),
		Builder:      builder,
		Dispatcher:   dispatcher,
		Metrics:      collector,
	})
	locationUseCase := location.NewLocationUseCase(infrahttp.NewLocationGateway(), infrahttp.FallbackLocation())
	healthUseCase := health.NewHealthUseCase(resource.GetString("app.weather.base-url"), apiKey, redisClient, weatherUseCase)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase, locationUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	api.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = contextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if resource.GetBool("app.weather.refresh.enabled") {
		weatherScheduler, err := schedule.NewWeatherScheduler(weatherUseCase, locationUseCase, resource.GetString("app.weather.refresh.cron"))
		if err != nil {
			log.Fatalf("Failed to create weather scheduler: %v", err)
		}
		if err := weatherScheduler.InitWeatherScheduleTasks(); err != nil {
			log.Fatalf("Failed to start weather scheduler: %v", err)
		}
		defer func() { _ = weatherScheduler.Stop() }()
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}
