// internal/providers/places/config.go
package places

import "time"

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RadiusMeters int
}
