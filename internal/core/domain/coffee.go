package domain

// Coffee is a drink served at exactly one cafe.
type Coffee struct {
	CoffeeID    string  `json:"coffeeID"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CafeID      string  `json:"cafeID"`
	AuditFields
}
