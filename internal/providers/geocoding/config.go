// internal/providers/geocoding/config.go
package geocoding

import "time"

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration // zero disables caching
}
