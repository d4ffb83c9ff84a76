package dto

import (
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Rating   *int    `json:"rating" binding:"required"`
	Comment  *string `json:"comment"`
	CoffeeID string  `json:"coffee_id" binding:"required"`
}

// UpdateNoteRequest is the body of PATCH /notes/:id.
// Pointer fields distinguish omitted fields from zero values.
type UpdateNoteRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// NoteResponse is the serialized representation of a note.
type NoteResponse struct {
	ID       string  `json:"id"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment,omitempty"`
	UserID   string  `json:"user_id"`
	CoffeeID string  `json:"coffee_id"`
}

// ToNoteResponse converts a domain.Note to its API representation.
func ToNoteResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:       note.NoteID,
		Rating:   note.Rating,
		Comment:  note.Comment,
		UserID:   note.UserID,
		CoffeeID: note.CoffeeID,
	}
}

// ToNoteResponses converts a slice of notes.
func ToNoteResponses(notes []domain.Note) []NoteResponse {
	resps := make([]NoteResponse, len(notes))
	for i := range notes {
		resps[i] = ToNoteResponse(&notes[i])
	}
	return resps
}
