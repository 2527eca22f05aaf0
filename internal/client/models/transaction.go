// Package models defines the data structures exchanged with the moneytrack
// backend API.
package models

// Transaction kinds accepted by the backend.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// NewTransaction is the payload for creating a transaction.
type NewTransaction struct {
	Type        string  `json:"type" validate:"required,oneof=expense income"`
	Tag         string  `json:"tag" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// TransactionFilter mirrors the query parameters of GET /api/transactions.
// Zero values are omitted from the query string; the backend then applies
// its own defaults (period=day, dateRange=Today, type=expense).
type TransactionFilter struct {
	Period    string
	DateRange string
	Month     string
	Year      int
	Tag       string
	Type      string
}
