package forecast

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// ViewBuilder assembles the presentation payload from one paired fetch.
type ViewBuilder struct {
	Window Window
	Locale monday.Locale
	// Calendar is used when the forecast carries no known time zone.
	Calendar *time.Location
}

func NewViewBuilder(window Window, locale monday.Locale, calendar *time.Location) ViewBuilder {
	return ViewBuilder{Window: window, Locale: locale, Calendar: calendar}
}

// Build derives the hourly and daily sequences relative to now. Records the window
// cannot interpret are left out and counted in the view stats.
func (b ViewBuilder) Build(current *entity.CurrentWeatherResponse, forecast *entity.ForecastResponse, coords entity.Coordinates, now time.Time) model.WeatherView {
	view := model.WeatherView{
		Coordinates: coords,
		Hourly:      []model.HourlyItem{},
		Daily:       []model.DailyItem{},
		FetchedAt:   now,
	}

	if current != nil {
		view.Location = current.Location
		view.TempC = current.Current.TempC
		view.TempLabel = TempLabel(current.Current.TempC)
		view.Condition = current.Current.Condition.Text
		view.IconURL, _ = current.Current.Condition.IconURL()
	}

	days := forecast.Days()
	if len(days) == 0 {
		return view
	}
	if view.Location.Name == "" {
		view.Location = forecast.Location
	}
	view.MaxTempC = days[0].Day.MaxTempC
	view.MinTempC = days[0].Day.MinTempC

	calendar := CalendarFor(forecast.Location, b.Calendar)
	hourly := b.Window.Hourly(days, now, calendar)
	view.Stats.DroppedHours = hourly.Dropped

	for _, hour := range hourly.Hours {
		label, ok := DisplayTime(hour)
		if !ok {
			view.Stats.DroppedHours++
			continue
		}
		iconURL, _ := hour.Condition.IconURL()
		view.Hourly = append(view.Hourly, model.HourlyItem{
			Time:      label,
			Timestamp: hour.Time,
			TempC:     hour.TempC,
			TempLabel: TempLabel(hour.TempC),
			Condition: hour.Condition.Text,
			IconURL:   iconURL,
		})
	}

	for _, day := range b.Window.Daily(days) {
		weekday, ok := Weekday(day, b.locale())
		if !ok {
			view.Stats.UnparseableDays++
			weekday = day.Date
		}
		iconURL, _ := day.Day.Condition.IconURL()
		view.Daily = append(view.Daily, model.DailyItem{
			Date:      day.Date,
			Weekday:   weekday,
			MinTempC:  day.Day.MinTempC,
			MaxTempC:  day.Day.MaxTempC,
			Label:     DailyLabel(weekday, day.Day),
			Condition: day.Day.Condition.Text,
			IconURL:   iconURL,
		})
	}

	return view
}

func (b ViewBuilder) locale() monday.Locale {
	if b.Locale == "" {
		return DefaultLocale
	}
	return b.Locale
}

// TempLabel renders a temperature truncated toward zero, e.g. "21°".
func TempLabel(tempC float64) string {
	return fmt.Sprintf("%d°", int(tempC))
}

// DailyLabel renders "weekday:  min° / max°".
func DailyLabel(weekday string, day entity.Day) string {
	return fmt.Sprintf("%s:  %d° / %d°", weekday, int(day.MinTempC), int(day.MaxTempC))
}
