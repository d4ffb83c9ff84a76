package models

// Cafe is the database representation of a cafe row.
type Cafe struct {
	CafeID   string `db:"cafe_id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	AuditFields
}
