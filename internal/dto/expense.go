package dto

type ExpenseCreateRequest struct {
	ID          *string  `json:"id"`
	ExpenseDate string   `json:"expense_date"`
	OrderName   string   `json:"order_name"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Cost        *float64 `json:"cost"`
}

type ExpenseUpdateRequest struct {
	ExpenseDate *string  `json:"expense_date"`
	OrderName   *string  `json:"order_name"`
	Type        *string  `json:"type"`
	Location    *string  `json:"location"`
	Cost        *float64 `json:"cost"`
}

// ExpenseFilter holds list query parameters. A nil field means the
// parameter was absent and the filter is not applied.
type ExpenseFilter struct {
	ExpenseDate *string
	OrderName   *string
	Type        *string
	Location    *string
	Cost        *string
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	ExpenseDate string  `json:"expense_date"`
	OrderName   string  `json:"order_name"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
