package dto

type LocationCreateRequest struct {
	ID         *string `json:"id"`
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	BestDrink  string  `json:"best_drink"`
}

type LocationUpdateRequest struct {
	Name       *string `json:"name"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
	BestDrink  *string `json:"best_drink"`
}

// LocationFilter holds list query parameters. A nil field means the
// parameter was absent and the filter is not applied.
type LocationFilter struct {
	Name       *string
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	BestDrink  *string
}

type LocationResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	BestDrink  string `json:"best_drink"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
