package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	noteDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/note"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/notes"
)

// Note handles quick note HTTP requests
type Note struct {
	noteService notes.Service
	logger      *zap.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService notes.Service, logger *zap.Logger) *Note {
	return &Note{
		noteService: noteService,
		logger:      logger,
	}
}

// List handles GET /notes
// @Summary      List quick notes
// @Description  Pinned notes first, then most recently updated
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        category     query     string  false  "general, link, credential, contact or snippet"
// @Param        person_id    query     int     false  "Linked person"
// @Param        search       query     string  false  "Title or content"
// @Param        pinned_only  query     bool    false  "Only pinned notes"
// @Success      200          {object}  note.NotesListResponse
// @Router       /notes [get]
func (h *Note) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req noteDTO.ListNotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.NoteFilters{
		OwnerID:    ownerID,
		Search:     req.Search,
		PinnedOnly: req.PinnedOnly,
	}
	if req.Category != "" {
		category := entities.NoteCategory(req.Category)
		filters.Category = &category
	}
	if req.PersonID != 0 {
		filters.PersonID = &req.PersonID
	}

	rows, err := h.noteService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToNotesListResponse(rows))
}

// Get handles GET /notes/:id
// @Summary      Get a quick note
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  note.NoteResponse
// @Failure      404  {object}  map[string]interface{}  "Note not found"
// @Router       /notes/{id} [get]
func (h *Note) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.noteService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToNoteResponse(n))
}

// Create handles POST /notes
// @Summary      Save a quick note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      note.CreateNoteRequest  true  "Note"
// @Success      201      {object}  note.NoteResponse
// @Failure      404      {object}  map[string]interface{}  "Linked person not found"
// @Router       /notes [post]
func (h *Note) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req noteDTO.CreateNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.noteService.Create(c.Request().Context(), ownerID, notes.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: entities.NoteCategory(req.Category),
		PersonID: req.PersonID,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToNoteResponse(n))
}

// Update handles PUT /notes/:id
// @Summary      Update a quick note
// @Tags         Notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                     true  "Note ID"
// @Param        request  body      note.UpdateNoteRequest  true  "Fields to change"
// @Success      200      {object}  note.NoteResponse
// @Failure      404      {object}  map[string]interface{}  "Note not found"
// @Router       /notes/{id} [put]
func (h *Note) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req noteDTO.UpdateNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := notes.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		PersonID: req.PersonID,
		IsPinned: req.IsPinned,
	}
	if req.Category != nil {
		category := entities.NoteCategory(*req.Category)
		input.Category = &category
	}

	n, err := h.noteService.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToNoteResponse(n))
}

// TogglePin handles POST /notes/:id/toggle-pin
// @Summary      Pin or unpin a quick note
// @Tags         Notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  note.NoteResponse
// @Failure      404  {object}  map[string]interface{}  "Note not found"
// @Router       /notes/{id}/toggle-pin [post]
func (h *Note) TogglePin(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.noteService.TogglePin(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToNoteResponse(n))
}

// Delete handles DELETE /notes/:id
// @Summary      Delete a quick note
// @Tags         Notes
// @Security     BearerAuth
// @Param        id  path  int  true  "Note ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Note not found"
// @Router       /notes/{id} [delete]
func (h *Note) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.noteService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
