package model

import (
	"time"

	"weather-app/internal/domain/entity"
)

// HourlyItem is one entry of the hourly strip.
type HourlyItem struct {
	Time      string  `json:"time"`
	Timestamp string  `json:"timestamp"`
	TempC     float64 `json:"tempC"`
	TempLabel string  `json:"tempLabel"`
	Condition string  `json:"condition"`
	IconURL   string  `json:"iconUrl,omitempty"`
}

// DailyItem is one row of the daily list.
type DailyItem struct {
	Date      string  `json:"date"`
	Weekday   string  `json:"weekday"`
	MinTempC  float64 `json:"minTempC"`
	MaxTempC  float64 `json:"maxTempC"`
	Label     string  `json:"label"`
	Condition string  `json:"condition"`
	IconURL   string  `json:"iconUrl,omitempty"`
}

// WindowStats counts records the forecast window could not interpret.
type WindowStats struct {
	DroppedHours    int `json:"droppedHours"`
	UnparseableDays int `json:"unparseableDays"`
}

// WeatherView is everything a screen needs to render one location.
type WeatherView struct {
	Location    entity.Location    `json:"location"`
	Coordinates entity.Coordinates `json:"coordinates"`
	TempC       float64            `json:"tempC"`
	TempLabel   string             `json:"tempLabel"`
	Condition   string             `json:"condition"`
	IconURL     string             `json:"iconUrl,omitempty"`
	MaxTempC    float64            `json:"maxTempC"`
	MinTempC    float64            `json:"minTempC"`
	Hourly      []HourlyItem       `json:"hourly"`
	Daily       []DailyItem        `json:"daily"`
	Stats       WindowStats        `json:"stats"`
	FetchedAt   time.Time          `json:"fetchedAt"`
}
