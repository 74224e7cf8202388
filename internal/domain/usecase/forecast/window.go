// Package forecast turns a decoded forecast into the bounded hourly and daily
// sequences shown to the user. Everything here is pure: no I/O, no shared state,
// and malformed records are skipped instead of reported as errors.
package forecast

import (
	"time"

	"weather-app/internal/domain/entity"
)

const (
	// HourLayout is the provider format of Hour.Time.
	HourLayout = "2006-01-02 15:04"
	// DateLayout is the provider format of ForecastDay.Date.
	DateLayout = "2006-01-02"

	DefaultHourlyLimit = 48
	DefaultDailyLimit  = 7
)

// HourlyResult is the merged hourly sequence plus the number of records dropped
// because their timestamp could not be parsed.
type HourlyResult struct {
	Hours   []entity.Hour
	Dropped int
}

// Window bounds the hourly and daily sequences.
type Window struct {
	HourlyLimit int
	DailyLimit  int
}

// DefaultWindow returns the 48 hours / 7 days window.
func DefaultWindow() Window {
	return Window{HourlyLimit: DefaultHourlyLimit, DailyLimit: DefaultDailyLimit}
}

// FilterHours keeps the hours of the calendar day of now that have not elapsed yet.
// Once such an hour is found, every later hour belonging to another day is kept too.
// Timestamps are read in loc; a nil loc means the location of now.
func FilterHours(hours []entity.Hour, now time.Time, loc *time.Location) ([]entity.Hour, int) {
	if loc == nil {
		loc = now.Location()
	}
	now = now.In(loc)

	filtered := make([]entity.Hour, 0, len(hours))
	dropped := 0
	foundCurrentHour := false

	for _, hour := range hours {
		hourTime, err := time.ParseInLocation(HourLayout, hour.Time, loc)
		if err != nil {
			dropped++
			continue
		}

		if sameDay(hourTime, now) {
			if !hourTime.Before(now) {
				filtered = append(filtered, hour)
				foundCurrentHour = true
			}
		} else if foundCurrentHour {
			filtered = append(filtered, hour)
		}
	}

	return filtered, dropped
}

// Hourly merges the remaining hours of today with all of tomorrow's hours, capped at
// HourlyLimit. Fewer than two forecast days yield an empty result.
func (w Window) Hourly(days []entity.ForecastDay, now time.Time, loc *time.Location) HourlyResult {
	if len(days) < 2 {
		return HourlyResult{Hours: []entity.Hour{}}
	}

	today, dropped := FilterHours(days[0].Hour, now, loc)
	tomorrow := days[1].Hour

	merged := make([]entity.Hour, 0, len(today)+len(tomorrow))
	merged = append(merged, today...)
	merged = append(merged, tomorrow...)

	if limit := w.hourlyLimit(); len(merged) > limit {
		merged = merged[:limit]
	}

	return HourlyResult{Hours: merged, Dropped: dropped}
}

// Daily returns the first DailyLimit days in the order the provider sent them.
func (w Window) Daily(days []entity.ForecastDay) []entity.ForecastDay {
	n := min(len(days), w.dailyLimit())
	selected := make([]entity.ForecastDay, n)
	copy(selected, days[:n])
	return selected
}

// HourlyWindow applies the default window to the hourly sequence.
func HourlyWindow(days []entity.ForecastDay, now time.Time, loc *time.Location) HourlyResult {
	return DefaultWindow().Hourly(days, now, loc)
}

// DailyWindow applies the default window to the daily sequence.
func DailyWindow(days []entity.ForecastDay) []entity.ForecastDay {
	return DefaultWindow().Daily(days)
}

func (w Window) hourlyLimit() int {
	if w.HourlyLimit <= 0 {
		return DefaultHourlyLimit
	}
	return w.HourlyLimit
}

func (w Window) dailyLimit() int {
	if w.DailyLimit <= 0 {
		return DefaultDailyLimit
	}
	return w.DailyLimit
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CalendarFor returns the time zone of the forecast location, or fallback when the
// provider did not send a known zone.
func CalendarFor(location entity.Location, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.Local
	}
	if location.TzID == "" {
		return fallback
	}
	loc, err := time.LoadLocation(location.TzID)
	if err != nil {
		return fallback
	}
	return loc
}
