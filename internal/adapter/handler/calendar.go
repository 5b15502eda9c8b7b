package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	calendarDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/calendar"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/calendar"
)

// Calendar handles calendar and prep note HTTP requests
type Calendar struct {
	calendarService calendar.Service
	logger          *zap.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService calendar.Service, logger *zap.Logger) *Calendar {
	return &Calendar{
		calendarService: calendarService,
		logger:          logger,
	}
}

// Day handles GET /calendar
// @Summary      Meetings of one day
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        target_date  query     string  false  "YYYY-MM-DD, today when empty"
// @Success      200          {object}  calendar.CalendarMeetingsListResponse
// @Failure      400          {object}  map[string]interface{}  "Invalid date format"
// @Router       /calendar [get]
func (h *Calendar) Day(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.DayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, date, err := h.calendarService.Day(c.Request().Context(), ownerID, req.TargetDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCalendarDayResponse(meetings, date))
}

// Week handles GET /calendar/week
// @Summary      Meetings of seven days
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  false  "YYYY-MM-DD, today when empty"
// @Success      200         {array}   calendar.CalendarMeetingResponse
// @Failure      400         {object}  map[string]interface{}  "Invalid date format"
// @Router       /calendar/week [get]
func (h *Calendar) Week(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.WeekRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.calendarService.Week(c.Request().Context(), ownerID, req.StartDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCalendarMeetingResponses(meetings))
}

// Get handles GET /calendar/:id
// @Summary      Get a calendar meeting
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Calendar meeting ID"
// @Success      200  {object}  calendar.CalendarMeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Calendar meeting not found"
// @Router       /calendar/{id} [get]
func (h *Calendar) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.calendarService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCalendarMeetingResponse(m))
}

// Create handles POST /calendar
// @Summary      Add a calendar meeting
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      calendar.CreateCalendarMeetingRequest  true  "Calendar meeting"
// @Success      201      {object}  calendar.CalendarMeetingResponse
// @Failure      400      {object}  map[string]interface{}  "End before start"
// @Failure      409      {object}  map[string]interface{}  "External ID already exists"
// @Router       /calendar [post]
func (h *Calendar) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.CreateCalendarMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.calendarService.Create(c.Request().Context(), ownerID, toCalendarCreateInput(req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToCalendarMeetingResponse(m))
}

// Update handles PUT /calendar/:id
// @Summary      Update a calendar meeting
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                                    true  "Calendar meeting ID"
// @Param        request  body      calendar.UpdateCalendarMeetingRequest  true  "Fields to change"
// @Success      200      {object}  calendar.CalendarMeetingResponse
// @Failure      404      {object}  map[string]interface{}  "Calendar meeting not found"
// @Router       /calendar/{id} [put]
func (h *Calendar) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.UpdateCalendarMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := calendar.UpdateInput{
		ExternalID:  req.ExternalID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime.Ptr(),
		EndTime:     req.EndTime.Ptr(),
		Location:    req.Location,
		Attendees:   req.Attendees,
		IsRecurring: req.IsRecurring,
	}
	if req.CalendarSource != nil {
		source := entities.CalendarSource(*req.CalendarSource)
		input.CalendarSource = &source
	}

	m, err := h.calendarService.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCalendarMeetingResponse(m))
}

// Delete handles DELETE /calendar/:id
// @Summary      Delete a calendar meeting
// @Tags         Calendar
// @Security     BearerAuth
// @Param        id  path  int  true  "Calendar meeting ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Calendar meeting not found"
// @Router       /calendar/{id} [delete]
func (h *Calendar) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.calendarService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Import handles POST /calendar/import
// @Summary      Import calendar meetings
// @Description  Upserts by external_id: known entries are updated, new ones created
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      calendar.ImportCalendarRequest  true  "Batch"
// @Success      200      {object}  calendar.ImportResponse
// @Failure      409      {object}  map[string]interface{}  "External ID owned by another user"
// @Router       /calendar/import [post]
func (h *Calendar) Import(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.ImportCalendarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	inputs := make([]calendar.CreateInput, 0, len(req.Meetings))
	for _, m := range req.Meetings {
		inputs = append(inputs, toCalendarCreateInput(m))
	}

	result, err := h.calendarService.Import(c.Request().Context(), ownerID, inputs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToImportResponse(result))
}

// ExtractFromScreenshot handles POST /calendar/extract-from-screenshot
// @Summary      Read meetings from a calendar screenshot
// @Description  Returns a fixed sample when no vision provider is configured. Nothing is stored.
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      calendar.ScreenshotRequest  true  "Screenshot"
// @Success      200      {object}  calendar.ScreenshotResponse
// @Failure      400      {object}  map[string]interface{}  "Image is not valid base64"
// @Failure      500      {object}  map[string]interface{}  "Error extracting meetings"
// @Router       /calendar/extract-from-screenshot [post]
func (h *Calendar) ExtractFromScreenshot(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.ScreenshotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.calendarService.ExtractFromScreenshot(c.Request().Context(), ownerID, req.Image, req.TargetDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToScreenshotResponse(meetings))
}

// AddPrepNote handles POST /calendar/:id/notes
// @Summary      Add a prep note
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                       true  "Calendar meeting ID"
// @Param        request  body      calendar.PrepNoteRequest  true  "Prep note"
// @Success      201      {object}  calendar.PrepNoteResponse
// @Failure      404      {object}  map[string]interface{}  "Calendar meeting not found"
// @Router       /calendar/{id}/notes [post]
func (h *Calendar) AddPrepNote(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.PrepNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	note, err := h.calendarService.AddPrepNote(c.Request().Context(), ownerID, meetingID, calendar.PrepNoteInput{
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToPrepNoteResponse(note))
}

// UpdatePrepNote handles PUT /calendar/:id/notes/:note_id
// @Summary      Update a prep note
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                             true  "Calendar meeting ID"
// @Param        note_id  path      int                             true  "Prep note ID"
// @Param        request  body      calendar.UpdatePrepNoteRequest  true  "Fields to change"
// @Success      200      {object}  calendar.PrepNoteResponse
// @Failure      404      {object}  map[string]interface{}  "Prep note not found"
// @Router       /calendar/{id}/notes/{note_id} [put]
func (h *Calendar) UpdatePrepNote(c echo.Context) error {
	ownerID, meetingID, noteID, err := h.prepNoteIDs(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.UpdatePrepNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	note, err := h.calendarService.UpdatePrepNote(c.Request().Context(), ownerID, meetingID, noteID, calendar.PrepNoteUpdate{
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPrepNoteResponse(note))
}

// TogglePrepNote handles POST /calendar/:id/notes/:note_id/toggle
// @Summary      Flip a prep note's completion
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int  true  "Calendar meeting ID"
// @Param        note_id  path      int  true  "Prep note ID"
// @Success      200      {object}  calendar.PrepNoteResponse
// @Failure      404      {object}  map[string]interface{}  "Prep note not found"
// @Router       /calendar/{id}/notes/{note_id}/toggle [post]
func (h *Calendar) TogglePrepNote(c echo.Context) error {
	ownerID, meetingID, noteID, err := h.prepNoteIDs(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	note, err := h.calendarService.TogglePrepNote(c.Request().Context(), ownerID, meetingID, noteID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPrepNoteResponse(note))
}

// DeletePrepNote handles DELETE /calendar/:id/notes/:note_id
// @Summary      Delete a prep note
// @Tags         Calendar
// @Security     BearerAuth
// @Param        id       path  int  true  "Calendar meeting ID"
// @Param        note_id  path  int  true  "Prep note ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Prep note not found"
// @Router       /calendar/{id}/notes/{note_id} [delete]
func (h *Calendar) DeletePrepNote(c echo.Context) error {
	ownerID, meetingID, noteID, err := h.prepNoteIDs(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.calendarService.DeletePrepNote(c.Request().Context(), ownerID, meetingID, noteID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Calendar) prepNoteIDs(c echo.Context) (ownerID, meetingID, noteID uint, err error) {
	if ownerID, err = currentUserID(c); err != nil {
		return
	}
	if meetingID, err = parseID(c, "id"); err != nil {
		return
	}
	noteID, err = parseID(c, "note_id")
	return
}

func toCalendarCreateInput(req calendarDTO.CreateCalendarMeetingRequest) calendar.CreateInput {
	return calendar.CreateInput{
		ExternalID:     req.ExternalID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime.Time,
		EndTime:        req.EndTime.Time,
		Location:       req.Location,
		Attendees:      req.Attendees,
		CalendarSource: entities.CalendarSource(req.CalendarSource),
		IsRecurring:    req.IsRecurring,
	}
}
