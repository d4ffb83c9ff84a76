package models

// Coffee is the database representation of a coffee row.
type Coffee struct {
	CoffeeID    string  `db:"coffee_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	CafeID      string  `db:"cafe_id"`
	AuditFields
}
