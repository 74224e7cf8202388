package api

import (
	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
)

func toCurrentWeather(dto *external.CurrentWeatherResponse) *entity.CurrentWeatherResponse {
	return &entity.CurrentWeatherResponse{
		Location: toLocation(dto.Location),
		Current:  toCurrent(dto.Current),
	}
}

func toForecast(dto *external.ForecastResponse) *entity.ForecastResponse {
	days := make([]entity.ForecastDay, 0, len(dto.Forecast.ForecastDay))
	for _, day := range dto.Forecast.ForecastDay {
		days = append(days, toForecastDay(day))
	}

	return &entity.ForecastResponse{
		Location: toLocation(dto.Location),
		Current:  toCurrent(dto.Current),
		Forecast: entity.Forecast{ForecastDay: days},
	}
}

func toLocation(dto external.LocationDTO) entity.Location {
	return entity.Location{
		Name:      dto.Name,
		Region:    dto.Region,
		Country:   dto.Country,
		Lat:       dto.Lat,
		Lon:       dto.Lon,
		TzID:      dto.TzID,
		Localtime: dto.Localtime,
	}
}

func toCurrent(dto external.CurrentDTO) entity.CurrentConditions {
	return entity.CurrentConditions{
		TempC:       dto.TempC,
		FeelsLikeC:  dto.FeelsLikeC,
		Humidity:    dto.Humidity,
		WindKph:     dto.WindKph,
		LastUpdated: dto.LastUpdated,
		Condition:   toCondition(dto.Condition),
	}
}

func toCondition(dto external.ConditionDTO) entity.WeatherCondition {
	return entity.WeatherCondition{Text: dto.Text, Icon: dto.Icon}
}

func toForecastDay(dto external.ForecastDayDTO) entity.ForecastDay {
	hours := make([]entity.Hour, 0, len(dto.Hour))
	for _, hour := range dto.Hour {
		hours = append(hours, entity.Hour{
			Time:      hour.Time,
			TempC:     hour.TempC,
			Condition: toCondition(hour.Condition),
		})
	}

	return entity.ForecastDay{
		Date: dto.Date,
		Day: entity.Day{
			MaxTempC:  dto.Day.MaxTempC,
			MinTempC:  dto.Day.MinTempC,
			Condition: toCondition(dto.Day.Condition),
		},
		Hour: hours,
	}
}
