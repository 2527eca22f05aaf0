package models

// Summary holds per-period totals for the currently selected transaction type.
type Summary struct {
	Day   float64 `json:"day"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

// ReportItem is one row of the main transaction listing.
type ReportItem struct {
	ID     int64   `json:"id"`
	Tag    string  `json:"tag"`
	Amount float64 `json:"amount"`
}

// SideItem is one row of the side panel, covering both types.
type SideItem struct {
	Type   string  `json:"type"`
	Tag    string  `json:"tag"`
	Amount float64 `json:"amount"`
}

// Side aggregates the balance panel over the filtered range.
type Side struct {
	Month     string     `json:"month"`
	DateRange string     `json:"dateRange"`
	Balance   float64    `json:"balance"`
	Gain      float64    `json:"gain"`
	Loss      float64    `json:"loss"`
	Items     []SideItem `json:"items"`
}

// Report is the full response of GET /api/transactions.
type Report struct {
	Summary Summary      `json:"summary"`
	Items   []ReportItem `json:"items"`
	Side    Side         `json:"side"`
}
