package entity

import (
	"net/url"
	"strconv"
)

const iconScheme = "https:"

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query formats the coordinates the way the weather provider expects them: "lat,lon".
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Valid reports whether the pair lies inside the latitude and longitude ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinates) String() string {
	return c.Query()
}

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tzId,omitempty"`
	Localtime string  `json:"localtime,omitempty"`
}

type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// IconURL resolves the protocol-relative icon path. The second value is false when
// there is no usable icon, callers show a placeholder in that case.
func (c WeatherCondition) IconURL() (string, bool) {
	if c.Icon == "" {
		return "", false
	}

	u, err := url.Parse(iconScheme + c.Icon)
	if err != nil || u.Host == "" {
		return "", false
	}
	return u.String(), true
}

type CurrentConditions struct {
	TempC       float64          `json:"tempC"`
	FeelsLikeC  float64          `json:"feelsLikeC"`
	Humidity    int              `json:"humidity"`
	WindKph     float64          `json:"windKph"`
	LastUpdated string           `json:"lastUpdated,omitempty"`
	Condition   WeatherCondition `json:"condition"`
}

type Day struct {
	MaxTempC  float64          `json:"maxTempC"`
	MinTempC  float64          `json:"minTempC"`
	Condition WeatherCondition `json:"condition"`
}

type Hour struct {
	Time      string           `json:"time"`
	TempC     float64          `json:"tempC"`
	Condition WeatherCondition `json:"condition"`
}

type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
	Hour []Hour `json:"hour"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastDay"`
}

// CurrentWeatherResponse is the decoded "current conditions" resource.
type CurrentWeatherResponse struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// ForecastResponse is the decoded forecast resource, days ordered by date with today first.
type ForecastResponse struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast Forecast          `json:"forecast"`
}

// Days returns the forecast days, nil-safe.
func (r *ForecastResponse) Days() []ForecastDay {
	if r == nil {
		return nil
	}
	return r.Forecast.ForecastDay
}
