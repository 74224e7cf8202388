package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"

	"weather-app/internal/domain/entity"
	"weather-app/pkg/metrics"
	"weather-app/pkg/redis"
)

type stubGateway struct {
	currentCalls  int
	forecastCalls int
	err           error
}

func (s *stubGateway) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeatherResponse, error) {
	s.currentCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &entity.CurrentWeatherResponse{
		Location: entity.Location{Name: "Moscow"},
		Current:  entity.CurrentConditions{TempC: 18.5, Condition: entity.WeatherCondition{Text: "Cloudy", Icon: "//cdn.example/c.png"}},
	}, nil
}

func (s *stubGateway) GetForecast(ctx context.Context, coords entity.Coordinates, days int) (*entity.ForecastResponse, error) {
	s.forecastCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ForecastResponse{
		Location: entity.Location{Name: "Moscow", TzID: "Europe/Moscow"},
		Forecast: entity.Forecast{ForecastDay: []entity.ForecastDay{
			{Date: "2025-06-01", Hour: []entity.Hour{{Time: "2025-06-01 00:00", TempC: 10}}},
			{Date: "2025-06-02"},
		}},
	}, nil
}

func newCache(t *testing.T) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, _ := strconv.Atoi(server.Port())

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(port))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewCache(client, "weather", time.Minute), server
}

var moscow = entity.Coordinates{Lat: 55.7558, Lon: 37.6173}

func TestReadThrough(t *testing.T) {
	cache, server := newCache(t)
	next := &stubGateway{}
	gateway := NewWeatherCacheGateway(next, cache, metrics.NewCollectorWith("test", prometheus.NewRegistry()))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		forecast, err := gateway.GetForecast(ctx, moscow, 7)
		if err != nil {
			t.Fatalf("GetForecast: %v", err)
		}
		if len(forecast.Days()) != 2 || forecast.Days()[0].Hour[0].Time != "2025-06-01 00:00" {
			t.Fatalf("forecast = %+v", forecast)
		}

		current, err := gateway.GetCurrentWeather(ctx, moscow)
		if err != nil {
			t.Fatalf("GetCurrentWeather: %v", err)
		}
		if icon, ok := current.Current.Condition.IconURL(); !ok || icon != "https://cdn.example/c.png" {
			t.Errorf("icon = %q", icon)
		}
	}

	if next.forecastCalls != 1 || next.currentCalls != 1 {
		t.Errorf("provider calls = %d/%d, want 1/1", next.currentCalls, next.forecastCalls)
	}
	if !server.Exists("weather::forecast:7:55.7558,37.6173") {
		t.Errorf("keys = %v", server.Keys())
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	cache, server := newCache(t)
	next := &stubGateway{err: errors.New("provider down")}
	gateway := NewWeatherCacheGateway(next, cache, nil)

	if _, err := gateway.GetForecast(context.Background(), moscow, 7); err == nil {
		t.Fatal("expected error")
	}
	if len(server.Keys()) != 0 {
		t.Errorf("keys = %v, want none", server.Keys())
	}
}

func TestCacheOutageFallsThrough(t *testing.T) {
	cache, server := newCache(t)
	server.Close()

	next := &stubGateway{}
	gateway := NewWeatherCacheGateway(next, cache, nil)

	if _, err := gateway.GetCurrentWeather(context.Background(), moscow); err != nil {
		t.Fatalf("GetCurrentWeather: %v", err)
	}
	if next.currentCalls != 1 {
		t.Errorf("provider calls = %d, want 1", next.currentCalls)
	}
}
