package dto

import (
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// UserResponse is the serialized representation of a user returned by the
// auth endpoints. Notes carries only the notes the user itself authored;
// it is filled by the session probe and omitted elsewhere.
type UserResponse struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Email       *string        `json:"email,omitempty"`
	GithubID    *string        `json:"github_id,omitempty"`
	AvatarURL   *string        `json:"avatar_url,omitempty"`
	IsOAuthUser bool           `json:"is_oauth_user"`
	Notes       []NoteResponse `json:"notes,omitempty"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		GithubID:    user.GithubID,
		AvatarURL:   user.AvatarURL,
		IsOAuthUser: user.IsOAuthUser,
	}
}

// ToUserResponseWithNotes converts a user together with the notes they authored.
func ToUserResponseWithNotes(user *domain.User, notes []domain.Note) UserResponse {
	resp := ToUserResponse(user)
	resp.Notes = ToNoteResponses(notes)
	return resp
}
