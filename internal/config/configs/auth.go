package configs

import "time"

// Auth configures bearer token validation.
type Auth struct {
	// Secret is the HMAC key tokens are signed with.
	Secret   string        `env:"JWT_SECRET" envDefault:"change-me"`
	Issuer   string        `env:"JWT_ISSUER" envDefault:"mesa-placements"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
