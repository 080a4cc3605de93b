package configs

// Tracking limits the public impression and click endpoints per client IP.
type Tracking struct {
	RPS   float64 `env:"RPS" envDefault:"20"`
	Burst int     `env:"BURST" envDefault:"40"`
}
