package entities

import "time"

// Customer is a simple reference entity; leads and projects point at it by id.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contactInfo"`
	CreatedAt   time.Time `json:"createdAt"`
}
