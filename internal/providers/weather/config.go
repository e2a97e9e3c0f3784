// internal/providers/weather/config.go
package weather

import "time"

type Config struct {
	BaseURL string
	Timeout time.Duration
}
