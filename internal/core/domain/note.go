package domain

// Note is a user's review of a coffee. A note is owned by exactly one user
// and references exactly one coffee.
type Note struct {
	NoteID   string  `json:"noteID"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment,omitempty"`
	UserID   string  `json:"userID"`
	CoffeeID string  `json:"coffeeID"`
	AuditFields
}
