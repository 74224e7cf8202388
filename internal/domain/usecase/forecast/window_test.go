package forecast

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"weather-app/internal/domain/entity"
)

func dayHours(date string) []entity.Hour {
	hours := make([]entity.Hour, 24)
	for i := range hours {
		hours[i] = entity.Hour{Time: fmt.Sprintf("%s %02d:00", date, i), TempC: float64(i)}
	}
	return hours
}

func forecastDays(dates ...string) []entity.ForecastDay {
	days := make([]entity.ForecastDay, len(dates))
	for i, date := range dates {
		days[i] = entity.ForecastDay{Date: date, Hour: dayHours(date)}
	}
	return days
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(HourLayout, value, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestFilterHoursAtHourBoundary(t *testing.T) {
	hours := dayHours("2025-06-01")

	for h := 0; h < 24; h++ {
		now := at(t, fmt.Sprintf("2025-06-01 %02d:00", h))
		got, dropped := FilterHours(hours, now, time.UTC)

		if dropped != 0 {
			t.Fatalf("hour %d: dropped = %d, want 0", h, dropped)
		}
		if len(got) != 24-h {
			t.Fatalf("hour %d: len = %d, want %d", h, len(got), 24-h)
		}
		for i, hour := range got {
			if hour.Time != hours[h+i].Time {
				t.Errorf("hour %d: got[%d] = %q, want %q", h, i, hour.Time, hours[h+i].Time)
			}
		}
	}
}

func TestFilterHoursSpillsIntoNextDay(t *testing.T) {
	hours := append(dayHours("2025-06-01")[20:], dayHours("2025-06-02")[:3]...)
	got, _ := FilterHours(hours, at(t, "2025-06-01 21:10"), time.UTC)

	want := []string{"2025-06-01 22:00", "2025-06-01 23:00", "2025-06-02 00:00", "2025-06-02 01:00", "2025-06-02 02:00"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Time != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Time, want[i])
		}
	}
}

func TestFilterHoursIgnoresOtherDaysBeforeCurrentHour(t *testing.T) {
	hours := append(dayHours("2025-05-31")[22:], dayHours("2025-06-01")[10:12]...)
	got, _ := FilterHours(hours, at(t, "2025-06-01 09:00"), time.UTC)

	if len(got) != 2 || got[0].Time != "2025-06-01 10:00" {
		t.Fatalf("got %v, want the two 2025-06-01 hours", got)
	}
}

func TestFilterHoursDropsMalformedTimestamp(t *testing.T) {
	hours := dayHours("2025-06-01")
	hours[5].Time = "not-a-date"

	got, dropped := FilterHours(hours, at(t, "2025-06-01 00:00"), time.UTC)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(got) != 23 {
		t.Fatalf("len = %d, want 23", len(got))
	}
	for _, hour := range got {
		if hour.Time == "not-a-date" {
			t.Fatal("malformed hour was kept")
		}
	}
}

func TestFilterHoursUsesCalendar(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	hours := dayHours("2025-06-01")

	// 10:30 UTC is 13:30 in Moscow.
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	got, _ := FilterHours(hours, now, moscow)
	if len(got) != 10 || got[0].Time != "2025-06-01 14:00" {
		t.Fatalf("got %d hours starting at %v, want 10 starting at 14:00", len(got), got)
	}
}

func TestHourlyWindowExample(t *testing.T) {
	days := forecastDays("2025-06-01", "2025-06-02", "2025-06-03")
	result := HourlyWindow(days, at(t, "2025-06-01 14:30"), time.UTC)

	if len(result.Hours) != 33 {
		t.Fatalf("len = %d, want 33", len(result.Hours))
	}
	if first := result.Hours[0].Time; first != "2025-06-01 15:00" {
		t.Errorf("first = %q, want 2025-06-01 15:00", first)
	}
	if nine := result.Hours[8].Time; nine != "2025-06-01 23:00" {
		t.Errorf("ninth = %q, want 2025-06-01 23:00", nine)
	}
	if tenth := result.Hours[9].Time; tenth != "2025-06-02 00:00" {
		t.Errorf("tenth = %q, want 2025-06-02 00:00", tenth)
	}
	if last := result.Hours[32].Time; last != "2025-06-02 23:00" {
		t.Errorf("last = %q, want 2025-06-02 23:00", last)
	}
}

func TestHourlyWindowAfterLastHour(t *testing.T) {
	days := forecastDays("2025-06-01", "2025-06-02")
	result := HourlyWindow(days, at(t, "2025-06-01 23:59"), time.UTC)

	if len(result.Hours) != 24 {
		t.Fatalf("len = %d, want 24", len(result.Hours))
	}
	for i, hour := range result.Hours {
		if hour.Time != days[1].Hour[i].Time {
			t.Errorf("Hours[%d] = %q, want %q", i, hour.Time, days[1].Hour[i].Time)
		}
	}
}

func TestHourlyWindowCap(t *testing.T) {
	days := forecastDays("2025-06-01", "2025-06-02")
	days[0].Hour = append(days[0].Hour, dayHours("2025-06-02")...)
	days[1].Hour = append(days[1].Hour, dayHours("2025-06-03")...)

	result := HourlyWindow(days, at(t, "2025-06-01 00:00"), time.UTC)
	if len(result.Hours) != DefaultHourlyLimit {
		t.Fatalf("len = %d, want %d", len(result.Hours), DefaultHourlyLimit)
	}

	small := Window{HourlyLimit: 5}.Hourly(days, at(t, "2025-06-01 00:00"), time.UTC)
	if len(small.Hours) != 5 {
		t.Errorf("len = %d, want 5", len(small.Hours))
	}
}

func TestHourlyWindowNeedsTwoDays(t *testing.T) {
	now := at(t, "2025-06-01 08:00")

	for _, days := range [][]entity.ForecastDay{nil, forecastDays("2025-06-01")} {
		result := HourlyWindow(days, now, time.UTC)
		if result.Hours == nil || len(result.Hours) != 0 {
			t.Errorf("%d days: got %v, want empty", len(days), result.Hours)
		}
	}
}

func TestHourlyWindowKeepsTomorrowUnfiltered(t *testing.T) {
	days := forecastDays("2025-06-01", "2025-06-02")
	days[1].Hour[3].Time = "bogus"

	result := HourlyWindow(days, at(t, "2025-06-01 22:00"), time.UTC)
	if len(result.Hours) != 26 {
		t.Fatalf("len = %d, want 26", len(result.Hours))
	}
	if result.Dropped != 0 {
		t.Errorf("dropped = %d, want 0", result.Dropped)
	}
}

func TestDailyWindow(t *testing.T) {
	dates := []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
		"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09", "2025-06-10",
	}
	days := forecastDays(dates...)

	got := DailyWindow(days)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	for i := range got {
		if got[i].Date != dates[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Date, dates[i])
		}
	}

	if short := DailyWindow(days[:3]); len(short) != 3 {
		t.Errorf("len = %d, want 3", len(short))
	}
	if empty := DailyWindow(nil); len(empty) != 0 {
		t.Errorf("len = %d, want 0", len(empty))
	}
}

func TestDailyWindowKeepsDuplicates(t *testing.T) {
	days := forecastDays("2025-06-02", "2025-06-01", "2025-06-01")
	got := DailyWindow(days)
	if len(got) != 3 || got[0].Date != "2025-06-02" || got[2].Date != "2025-06-01" {
		t.Errorf("got %v, want input order", got)
	}
}

func TestCalendarFor(t *testing.T) {
	fallback := time.FixedZone("fallback", 0)

	if got := CalendarFor(entity.Location{}, fallback); got != fallback {
		t.Errorf("empty zone: got %v, want fallback", got)
	}
	if got := CalendarFor(entity.Location{TzID: "Not/AZone"}, fallback); got != fallback {
		t.Errorf("unknown zone: got %v, want fallback", got)
	}
	if got := CalendarFor(entity.Location{TzID: "Europe/Moscow"}, fallback); got.String() != "Europe/Moscow" {
		t.Errorf("got %v, want Europe/Moscow", got)
	}
}
