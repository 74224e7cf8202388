package external

// GeolocationResponse is the body of the ip-api.com /json resource.
type GeolocationResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Timezone   string  `json:"timezone"`
}
