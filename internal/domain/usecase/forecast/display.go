package forecast

import (
	"time"

	"github.com/goodsign/monday"

	"weather-app/internal/domain/entity"
)

const (
	DisplayTimeLayout = "15:04"
	weekdayLayout     = "Mon"

	// DefaultLocale matches the language the display was first written for.
	DefaultLocale = monday.LocaleRuRU
)

// DisplayTime renders the hour label "HH:mm". False means the timestamp is malformed.
func DisplayTime(hour entity.Hour) (string, bool) {
	t, err := time.Parse(HourLayout, hour.Time)
	if err != nil {
		return "", false
	}
	return t.Format(DisplayTimeLayout), true
}

// Weekday renders the short weekday name of the day in the given locale.
func Weekday(day entity.ForecastDay, locale monday.Locale) (string, bool) {
	t, err := time.Parse(DateLayout, day.Date)
	if err != nil {
		return "", false
	}
	return monday.Format(t, weekdayLayout, locale), true
}

// ParseLocale maps a locale name such as "en_US" to a supported locale. Unknown or
// empty names fall back to DefaultLocale.
func ParseLocale(name string) monday.Locale {
	for _, locale := range monday.ListLocales() {
		if string(locale) == name {
			return locale
		}
	}
	return DefaultLocale
}
