package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-app/internal/domain/usecase/location"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// WeatherScheduler refreshes the weather of the resolved location on a cron expression
type WeatherScheduler struct {
	scheduler       gocron.Scheduler
	weatherUseCase  weather.UseCase
	locationUseCase location.UseCase
	cronExpression  string
	logger          *zap.Logger
}

// NewWeatherScheduler validates the five-field cron expression and creates the scheduler
func NewWeatherScheduler(weatherUseCase weather.UseCase, locationUseCase location.UseCase, cronExpression string) (*WeatherScheduler, error) {
	if _, err := cron.ParseStandard(cronExpression); err != nil {
		return nil, fmt.Errorf("invalid refresh cron expression %q: %w", cronExpression, err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &WeatherScheduler{
		scheduler:       scheduler,
		weatherUseCase:  weatherUseCase,
		locationUseCase: locationUseCase,
		cronExpression:  cronExpression,
		logger:          log.Named("schedule"),
	}, nil
}

// InitWeatherScheduleTasks registers the refresh job and starts the scheduler
func (s *WeatherScheduler) InitWeatherScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cronExpression, false),
		gocron.NewTask(s.ExecuteScheduledTask),
		gocron.WithName("weather-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule weather refresh: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info(msg.GetMessage("weather.refresh.scheduled", s.cronExpression))

	next := s.NextRun(time.Now())
	s.logger.Info(msg.GetMessage("weather.refresh.next", next.Format(time.RFC3339)), zap.Time("next_run", next))
	return nil
}

// NextRun returns the next activation of the expression after from
func (s *WeatherScheduler) NextRun(from time.Time) time.Time {
	schedule, err := cron.ParseStandard(s.cronExpression)
	if err != nil {
		return time.Time{}
	}
	return schedule.Next(from)
}

// ExecuteScheduledTask resolves the location and loads its weather into the state store
func (s *WeatherScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("weather.refresh.start", requestID), zap.String("request_id", requestID))

	coords := s.locationUseCase.Resolve(ctx)
	status := weather.StatusLoaded
	if _, err := s.weatherUseCase.GetWeather(ctx, coords); err != nil {
		status = weather.StatusFailed
	}

	log.Info(msg.GetMessage("weather.refresh.end", status, requestID), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
