package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NoteHandler handles the tasting-note CRUD endpoints. Every operation is
// scoped to the authenticated user resolved by the session gate.
type NoteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns portssvc.NoteSvcFacade) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

// registerNoteRoutes sets up the note routes on the gated group.
func registerNoteRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) *NoteHandler {
	h := NewNoteHandler(services.Note)

	notes := rg.Group("/notes")
	{
		notes.GET("", h.ListNotes)
		notes.POST("", h.CreateNote)
		notes.GET("/:noteID", h.GetNote)
		notes.PATCH("/:noteID", h.UpdateNote)
		notes.DELETE("/:noteID", h.DeleteNote)
	}

	return h
}

// ListNotes returns the notes authored by the current user.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	notes, err := h.noteService.ListNotesForUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

// CreateNote creates a note for an existing coffee, owned by the current user.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Rating and coffee_id are required"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to create note", slog.String("coffee_id", req.CoffeeID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// GetNote returns one of the current user's notes. Someone else's note is
// indistinguishable from a missing one.
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	note, err := h.noteService.GetNoteByID(c.Request.Context(), userID, c.Param("noteID"))
	if err != nil {
		respondWithError(c, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// UpdateNote applies a partial update to one of the current user's notes.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), userID, c.Param("noteID"), req)
	if err != nil {
		respondWithError(c, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// DeleteNote removes one of the current user's notes.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("noteID")); err != nil {
		respondWithError(c, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Note deleted successfully"})
}
