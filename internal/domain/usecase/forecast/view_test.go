package forecast

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goodsign/monday"

	"weather-app/internal/domain/entity"
)

const samplePayload = `{
  "location": {"name": "Moscow", "lat": 55.75, "lon": 37.62},
  "current": {"tempC": 21.7, "condition": {"text": "Sunny", "icon": "//cdn.example/icon.png"}},
  "forecast": {"forecastDay": [
    {"date": "2025-06-01", "day": {"maxTempC": 24.9, "minTempC": 12.2, "condition": {"text": "Sunny", "icon": "//cdn.example/icon.png"}},
     "hour": [
       {"time": "2025-06-01 22:00", "tempC": 15.5, "condition": {"text": "Clear", "icon": "//cdn.example/night.png"}},
       {"time": "2025-06-01 23:00", "tempC": -0.5, "condition": {"text": "Clear", "icon": ""}}
     ]},
    {"date": "2025-06-02", "day": {"maxTempC": 20, "minTempC": 10, "condition": {"text": "Rain", "icon": "//cdn.example/rain.png"}},
     "hour": [
       {"time": "2025-06-02 00:00", "tempC": 14, "condition": {"text": "Rain", "icon": "//cdn.example/rain.png"}},
       {"time": "broken", "tempC": 14, "condition": {"text": "Rain", "icon": "//cdn.example/rain.png"}}
     ]},
    {"date": "junk", "day": {"maxTempC": 1, "minTempC": -1, "condition": {"text": "Snow"}}, "hour": []}
  ]}
}`

func decodeSample(t *testing.T) *entity.ForecastResponse {
	t.Helper()
	var forecast entity.ForecastResponse
	if err := json.Unmarshal([]byte(samplePayload), &forecast); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return &forecast
}

func TestEntityIconURLFromDecodedView(t *testing.T) {
	forecast := decodeSample(t)
	got, ok := forecast.Current.Condition.IconURL()
	if !ok || got != "https://cdn.example/icon.png" {
		t.Errorf("IconURL() = %q, %v; want https://cdn.example/icon.png", got, ok)
	}
}

func TestViewBuilderBuild(t *testing.T) {
	forecast := decodeSample(t)
	current := &entity.CurrentWeatherResponse{Location: forecast.Location, Current: forecast.Current}
	now := time.Date(2025, 6, 1, 21, 15, 0, 0, time.UTC)
	coords := entity.Coordinates{Lat: 55.75, Lon: 37.62}

	view := NewViewBuilder(DefaultWindow(), monday.LocaleEnUS, time.UTC).Build(current, forecast, coords, now)

	if view.Location.Name != "Moscow" || view.TempLabel != "21°" || view.Condition != "Sunny" {
		t.Errorf("header = %q %q %q", view.Location.Name, view.TempLabel, view.Condition)
	}
	if view.IconURL != "https://cdn.example/icon.png" {
		t.Errorf("IconURL = %q", view.IconURL)
	}
	if view.MaxTempC != 24.9 || view.MinTempC != 12.2 {
		t.Errorf("range = %v..%v", view.MinTempC, view.MaxTempC)
	}

	wantTimes := []string{"22:00", "23:00", "00:00"}
	if len(view.Hourly) != len(wantTimes) {
		t.Fatalf("hourly len = %d, want %d", len(view.Hourly), len(wantTimes))
	}
	for i, want := range wantTimes {
		if view.Hourly[i].Time != want {
			t.Errorf("Hourly[%d].Time = %q, want %q", i, view.Hourly[i].Time, want)
		}
	}
	if view.Hourly[1].TempLabel != "0°" {
		t.Errorf("truncated label = %q, want 0°", view.Hourly[1].TempLabel)
	}
	if view.Hourly[1].IconURL != "" {
		t.Errorf("missing icon resolved to %q", view.Hourly[1].IconURL)
	}
	if view.Stats.DroppedHours != 1 {
		t.Errorf("DroppedHours = %d, want 1", view.Stats.DroppedHours)
	}

	if len(view.Daily) != 3 {
		t.Fatalf("daily len = %d, want 3", len(view.Daily))
	}
	if view.Daily[0].Label != "Sun:  12° / 24°" {
		t.Errorf("Daily[0].Label = %q", view.Daily[0].Label)
	}
	if view.Daily[2].Weekday != "junk" || view.Stats.UnparseableDays != 1 {
		t.Errorf("malformed day = %q, unparseable = %d", view.Daily[2].Weekday, view.Stats.UnparseableDays)
	}
}

func TestViewBuilderWithoutForecast(t *testing.T) {
	current := &entity.CurrentWeatherResponse{
		Location: entity.Location{Name: "Paris"},
		Current:  entity.CurrentConditions{TempC: 9.9},
	}
	view := ViewBuilder{}.Build(current, nil, entity.Coordinates{}, time.Now())

	if view.Location.Name != "Paris" || view.TempLabel != "9°" {
		t.Errorf("got %q %q", view.Location.Name, view.TempLabel)
	}
	if view.Hourly == nil || view.Daily == nil || len(view.Hourly)+len(view.Daily) != 0 {
		t.Errorf("want empty non-nil sequences, got %v %v", view.Hourly, view.Daily)
	}
}
