package entity

import "time"

// Client cliente del salón. El teléfono es la clave natural.
type Client struct {
	ID        int64
	Name      string
	Phone     string
	BirthDate *time.Time
}
