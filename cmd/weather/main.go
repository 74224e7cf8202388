package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/location"
	"weather-app/internal/domain/usecase/weather"
	infrahttp "weather-app/internal/infra/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	coords   *entity.Coordinates
	locale   string
	config   string
	logLevel string
	timeout  time.Duration
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log.SetLevel(opts.logLevel)
	defer log.Sync()

	if opts.config != "" {
		if err := resource.Init(opts.config); err != nil {
			fmt.Fprintf(stderr, "failed to read %s: %v\n", opts.config, err)
			return exitUsage
		}
	}
	if resource.GetString("app.weather.api-key") == "" {
		fmt.Fprintln(stderr, msg.GetMessage("weather.error.missing-api-key"))
		return exitUsage
	}

	locale := opts.locale
	if locale == "" {
		locale = resource.GetString("app.display.locale")
	}

	gateway, err := infrahttp.NewWeatherGateway()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	dispatcher := weather.NewDispatcher()
	defer dispatcher.Close()

	useCase := weather.NewWeatherUseCase(gateway, weather.Options{
		ForecastDays: resource.GetInt("app.weather.forecast-days"),
		Builder:      forecast.NewViewBuilder(forecast.DefaultWindow(), forecast.ParseLocale(locale), time.Local),
		Dispatcher:   dispatcher,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	var coords entity.Coordinates
	if opts.coords != nil {
		coords = *opts.coords
	} else {
		coords = location.NewLocationUseCase(infrahttp.NewLocationGateway(), infrahttp.FallbackLocation()).Resolve(ctx)
	}

	view, err := load(ctx, useCase, coords)
	if err != nil {
		fmt.Fprintln(stderr, msg.GetMessage("weather.error.fetch-failed", err))
		return exitFailure
	}

	if err := render(stdout, view); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}

// load starts a refresh and takes its result from the state dispatcher.
func load(ctx context.Context, useCase weather.UseCase, coords entity.Coordinates) (*model.WeatherView, error) {
	await := weather.NewAwait(useCase)
	state, err := await.Wait(ctx, useCase.Refresh(ctx, coords))
	if err != nil {
		return nil, err
	}
	if state.Status == weather.StatusFailed {
		return nil, state.Err
	}
	return state.View, nil
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	flags := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	lat := flags.Float64("lat", 0, "latitude in decimal degrees, requires --lon")
	lon := flags.Float64("lon", 0, "longitude in decimal degrees, requires --lat")
	opts := &options{}
	flags.StringVar(&opts.locale, "locale", "", "weekday locale, e.g. ru_RU or en_US (default app.display.locale)")
	flags.StringVarP(&opts.config, "config", "c", "", "path of the application properties file")
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall request timeout")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.Changed("lat") != flags.Changed("lon") {
		return nil, errors.New("--lat and --lon must be given together")
	}
	if flags.Changed("lat") {
		coords := entity.Coordinates{Lat: *lat, Lon: *lon}
		if !coords.Valid() {
			return nil, errors.New(msg.GetMessage("weather.error.invalid-coordinates"))
		}
		opts.coords = &coords
	}
	return opts, nil
}

func render(w io.Writer, view *model.WeatherView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", locationLabel(view.Location))
	fmt.Fprintf(tw, "%s\t%s\n", view.TempLabel, view.Condition)
	fmt.Fprintf(tw, "%s / %s\n\n", forecast.TempLabel(view.MinTempC), forecast.TempLabel(view.MaxTempC))

	for _, hour := range view.Hourly {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", hour.Time, hour.TempLabel, hour.Condition)
	}
	fmt.Fprintln(tw)

	for _, day := range view.Daily {
		fmt.Fprintf(tw, "%s\t%s\n", day.Label, day.Condition)
	}

	if dropped := view.Stats.DroppedHours + view.Stats.UnparseableDays; dropped > 0 {
		fmt.Fprintf(tw, "\n(%d records skipped)\n", dropped)
	}
	return tw.Flush()
}

func locationLabel(l entity.Location) string {
	if l.Country == "" || l.Country == l.Name {
		return l.Name
	}
	return l.Name + ", " + l.Country
}
