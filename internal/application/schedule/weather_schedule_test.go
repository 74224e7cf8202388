package schedule

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
)

type stubWeather struct {
	coords []entity.Coordinates
	err    error
}

func (s *stubWeather) GetWeather(ctx context.Context, coords entity.Coordinates) (*model.WeatherView, error) {
	s.coords = append(s.coords, coords)
	if s.err != nil {
		return nil, s.err
	}
	return &model.WeatherView{}, nil
}

func (s *stubWeather) Refresh(ctx context.Context, coords entity.Coordinates) uint64 { return 0 }

func (s *stubWeather) State() (weather.State, bool) { return weather.State{}, false }

func (s *stubWeather) Subscribe(listener weather.Listener) {}

type stubLocation struct{}

func (stubLocation) Resolve(ctx context.Context) entity.Coordinates {
	return entity.Coordinates{Lat: 1, Lon: 2}
}

func (stubLocation) Fallback() entity.Location { return entity.Location{} }

func TestNewWeatherSchedulerRejectsExpression(t *testing.T) {
	if _, err := NewWeatherScheduler(&stubWeather{}, stubLocation{}, "every minute"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNextRun(t *testing.T) {
	scheduler, err := NewWeatherScheduler(&stubWeather{}, stubLocation{}, "*/15 * * * *")
	if err != nil {
		t.Fatalf("NewWeatherScheduler: %v", err)
	}
	defer scheduler.Stop()

	from := time.Date(2025, 6, 1, 14, 31, 0, 0, time.UTC)
	if got := scheduler.NextRun(from); !got.Equal(time.Date(2025, 6, 1, 14, 45, 0, 0, time.UTC)) {
		t.Errorf("NextRun = %v", got)
	}
}

func TestExecuteScheduledTask(t *testing.T) {
	for _, fetchErr := range []error{nil, errors.New("offline")} {
		uc := &stubWeather{err: fetchErr}
		scheduler, err := NewWeatherScheduler(uc, stubLocation{}, "0 * * * *")
		if err != nil {
			t.Fatalf("NewWeatherScheduler: %v", err)
		}

		scheduler.ExecuteScheduledTask(context.Background())
		_ = scheduler.Stop()

		if len(uc.coords) != 1 || uc.coords[0] != (entity.Coordinates{Lat: 1, Lon: 2}) {
			t.Errorf("fetched %v, want the resolved location once", uc.coords)
		}
	}
}

func TestInitWeatherScheduleTasksLogsNextRun(t *testing.T) {
	scheduler, err := NewWeatherScheduler(&stubWeather{}, stubLocation{}, "*/15 * * * *")
	if err != nil {
		t.Fatalf("NewWeatherScheduler: %v", err)
	}
	core, logs := observer.New(zap.InfoLevel)
	scheduler.logger = zap.New(core)

	before := time.Now()
	if err := scheduler.InitWeatherScheduleTasks(); err != nil {
		t.Fatalf("InitWeatherScheduleTasks: %v", err)
	}
	defer scheduler.Stop()

	entries := logs.FilterField(zap.Time("next_run", scheduler.NextRun(before))).All()
	if len(entries) != 1 {
		for _, entry := range logs.All() {
			t.Logf("logged: %s %v", entry.Message, entry.ContextMap())
		}
		t.Fatalf("next run entries = %d, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Message, "Next weather refresh at ") {
		t.Errorf("message = %q", entries[0].Message)
	}
}
