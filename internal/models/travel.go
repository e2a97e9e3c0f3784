// internal/models/travel.go
package models

// Location is a geocoded place. QueryName is the name the user asked
// about; DisplayName is the provider's canonical name.
type Location struct {
	QueryName   string  `json:"queryName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

type WeatherInfo struct {
	TemperatureC  float64 `json:"temperatureC"`
	RainChancePct float64 `json:"rainChancePct"`
	WeatherCode   int     `json:"weatherCode"`
	Description   string  `json:"description"`
}

// Place is a single tourist attraction near a location.
type Place struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
