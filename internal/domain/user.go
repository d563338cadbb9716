package domain

import "time"

// User represents a registered customer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Cart maps food item id to requested quantity. Absent entries mean zero;
// persisted quantities are always positive.
type Cart map[string]int
