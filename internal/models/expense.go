package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseType string

const (
	ExpenseTypeCafe     ExpenseType = "Cafe"
	ExpenseTypeSelfMade ExpenseType = "Self-made"
)

// Valid reports whether t is one of the allowed expense types.
func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeCafe || t == ExpenseTypeSelfMade
}

type Expense struct {
	ID          uuid.UUID
	ExpenseDate time.Time
	OrderName   string
	Type        ExpenseType
	Location    string
	Cost        float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
