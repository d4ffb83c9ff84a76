package models

// Note is the database representation of a note row.
type Note struct {
	NoteID   string  `db:"note_id"`
	Rating   int     `db:"rating"`
	Comment  *string `db:"comment"`
	UserID   string  `db:"user_id"`
	CoffeeID string  `db:"coffee_id"`
	AuditFields
}
