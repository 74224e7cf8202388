package external

// Response bodies of the weatherapi.com "current" and "forecast" resources.
// Both the JSON and the XML formats use the same snake_case element names.

type LocationDTO struct {
	Name      string  `json:"name" xml:"name"`
	Region    string  `json:"region" xml:"region"`
	Country   string  `json:"country" xml:"country"`
	Lat       float64 `json:"lat" xml:"lat"`
	Lon       float64 `json:"lon" xml:"lon"`
	TzID      string  `json:"tz_id" xml:"tz_id"`
	Localtime string  `json:"localtime" xml:"localtime"`
}

type ConditionDTO struct {
	Text string `json:"text" xml:"text"`
	Icon string `json:"icon" xml:"icon"`
	Code int    `json:"code" xml:"code"`
}

type CurrentDTO struct {
	LastUpdated string       `json:"last_updated" xml:"last_updated"`
	TempC       float64      `json:"temp_c" xml:"temp_c"`
	FeelsLikeC  float64      `json:"feelslike_c" xml:"feelslike_c"`
	Humidity    int          `json:"humidity" xml:"humidity"`
	WindKph     float64      `json:"wind_kph" xml:"wind_kph"`
	Condition   ConditionDTO `json:"condition" xml:"condition"`
}

type DayDTO struct {
	MaxTempC  float64      `json:"maxtemp_c" xml:"maxtemp_c"`
	MinTempC  float64      `json:"mintemp_c" xml:"mintemp_c"`
	Condition ConditionDTO `json:"condition" xml:"condition"`
}

type HourDTO struct {
	TimeEpoch int64        `json:"time_epoch" xml:"time_epoch"`
	Time      string       `json:"time" xml:"time"`
	TempC     float64      `json:"temp_c" xml:"temp_c"`
	Condition ConditionDTO `json:"condition" xml:"condition"`
}

type ForecastDayDTO struct {
	Date      string    `json:"date" xml:"date"`
	DateEpoch int64     `json:"date_epoch" xml:"date_epoch"`
	Day       DayDTO    `json:"day" xml:"day"`
	Hour      []HourDTO `json:"hour" xml:"hour"`
}

type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday" xml:"forecastday"`
}

// CurrentWeatherResponse is the body of GET /current.{json,xml}
type CurrentWeatherResponse struct {
	Location LocationDTO `json:"location" xml:"location"`
	Current  CurrentDTO  `json:"current" xml:"current"`
}

// ForecastResponse is the body of GET /forecast.{json,xml}
type ForecastResponse struct {
	Location LocationDTO `json:"location" xml:"location"`
	Current  CurrentDTO  `json:"current" xml:"current"`
	Forecast ForecastDTO `json:"forecast" xml:"forecast"`
}

// APIErrorResponse represents error bodies. JSON nests the detail under "error",
// XML uses <error> as the root element.
type APIErrorResponse struct {
	Error   APIErrorDetail `json:"error" xml:"-"`
	Code    int            `json:"-" xml:"code"`
	Message string         `json:"-" xml:"message"`
}

type APIErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Detail returns the error detail regardless of the format it was decoded from.
func (r *APIErrorResponse) Detail() APIErrorDetail {
	if r.Error.Message != "" || r.Error.Code != 0 {
		return r.Error
	}
	return APIErrorDetail{Code: r.Code, Message: r.Message}
}
