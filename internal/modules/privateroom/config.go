package privateroom

import "time"

// Config holds the private room module configuration.
type Config struct {
	// Lifetime is how long a room exists before it is deleted.
	Lifetime time.Duration `env:"PRIVATE_ROOM_LIFETIME" envDefault:"30m"`
}
