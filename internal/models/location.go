package models

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID         uuid.UUID
	Name       string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	BestDrink  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
