package configs

import "time"

// Kafka configures the booking event publisher. With no brokers events are
// only logged.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"placement.booking-events"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
