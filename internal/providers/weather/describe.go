// internal/providers/weather/describe.go
package weather

// weatherDescriptions is the closed WMO weather-code vocabulary the
// provider uses. Unlisted codes map to the generic fallback.
var weatherDescriptions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "foggy",
	48: "foggy",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow",
	73: "moderate snow",
	75: "heavy snow",
	77: "snow grains",
	80: "slight rain showers",
	81: "moderate rain showers",
	82: "violent rain showers",
	85: "slight snow showers",
	86: "heavy snow showers",
	95: "thunderstorm",
	96: "thunderstorm with slight hail",
	99: "thunderstorm with heavy hail",
}

// Describe maps a weather code to its textual description.
func Describe(code int) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return "unknown weather"
}
