package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/meetings"
)

// Meeting handles 1:1 meeting HTTP requests
type Meeting struct {
	meetingService meetings.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetings.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Newest first, with action items, topics and the person's name
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        skip         query     int     false  "Offset"             default(0)
// @Param        limit        query     int     false  "Page size (1-100)"  default(50)
// @Param        employee_id  query     int     false  "Person ID"
// @Param        start_date   query     string  false  "Earliest meeting date"
// @Param        end_date     query     string  false  "Latest meeting date"
// @Success      200          {array}   meeting.MeetingResponse
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	req := meetingDTO.ListMeetingsRequest{Limit: 50}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.MeetingFilters{
		OwnerID:   ownerID,
		StartDate: req.StartDate.Ptr(),
		EndDate:   req.EndDate.Ptr(),
		Limit:     req.Limit,
		Offset:    req.Skip,
	}
	if req.EmployeeID != 0 {
		filters.EmployeeID = &req.EmployeeID
	}

	rows, err := h.meetingService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponses(rows))
}

// Get handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// Create handles POST /meetings
// @Summary      Record a meeting
// @Description  Stores the meeting with its action items and topics in one transaction
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting"
// @Success      201      {object}  meeting.MeetingResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}  "Employee not found"
// @Router       /meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meetings.CreateInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date.Time,
		Notes:      req.Notes,
		Summary:    req.Summary,
	}
	if req.DurationMinutes != nil {
		input.DurationMinutes = *req.DurationMinutes
	}
	for _, item := range req.ActionItems {
		input.ActionItems = append(input.ActionItems, toActionItemInput(item))
	}
	for _, topic := range req.Topics {
		input.Topics = append(input.Topics, toTopicInput(topic))
	}

	m, err := h.meetingService.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingResponse(m))
}

// Update handles PUT /meetings/:id
// @Summary      Update a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                           true  "Meeting ID"
// @Param        request  body      meeting.UpdateMeetingRequest  true  "Fields to change"
// @Success      200      {object}  meeting.MeetingResponse
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [put]
func (h *Meeting) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Update(c.Request().Context(), ownerID, id, meetings.UpdateInput{
		EmployeeID:      req.EmployeeID,
		Date:            req.Date.Ptr(),
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		Summary:         req.Summary,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// Delete handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Removes its action items and topics. Tasks that referenced it are kept and unlinked.
// @Tags         Meetings
// @Security     BearerAuth
// @Param        id  path  int  true  "Meeting ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddActionItem handles POST /meetings/:id/action-items
// @Summary      Add an action item
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                         true  "Meeting ID"
// @Param        request  body      meeting.ActionItemRequest   true  "Action item"
// @Success      201      {object}  meeting.ActionItemResponse
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/action-items [post]
func (h *Meeting) AddActionItem(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.ActionItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.AddActionItem(c.Request().Context(), ownerID, meetingID, toActionItemInput(req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToActionItemResponse(item))
}

// UpdateActionItem handles PUT /meetings/action-items/:item_id
// @Summary      Update an action item
// @Description  Moving to completed stamps completed_at
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path      int                               true  "Action item ID"
// @Param        request  body      meeting.UpdateActionItemRequest   true  "Fields to change"
// @Success      200      {object}  meeting.ActionItemResponse
// @Failure      404      {object}  map[string]interface{}  "Action item not found"
// @Router       /meetings/action-items/{item_id} [put]
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	itemID, err := parseID(c, "item_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateActionItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meetings.ActionItemUpdate{
		Description: req.Description,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate.Ptr(),
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := entities.Status(*req.Status)
		input.Status = &status
	}

	item, err := h.meetingService.UpdateActionItem(c.Request().Context(), ownerID, itemID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// DeleteActionItem handles DELETE /meetings/action-items/:item_id
// @Summary      Delete an action item
// @Tags         Meetings
// @Security     BearerAuth
// @Param        item_id  path  int  true  "Action item ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Action item not found"
// @Router       /meetings/action-items/{item_id} [delete]
func (h *Meeting) DeleteActionItem(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	itemID, err := parseID(c, "item_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteActionItem(c.Request().Context(), ownerID, itemID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddTopic handles POST /meetings/:id/topics
// @Summary      Add a topic
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                   true  "Meeting ID"
// @Param        request  body      meeting.TopicRequest  true  "Topic"
// @Success      201      {object}  meeting.TopicResponse
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/topics [post]
func (h *Meeting) AddTopic(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.TopicRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	topic, err := h.meetingService.AddTopic(c.Request().Context(), ownerID, meetingID, toTopicInput(req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTopicResponse(topic))
}

// DeleteTopic handles DELETE /meetings/topics/:topic_id
// @Summary      Delete a topic
// @Tags         Meetings
// @Security     BearerAuth
// @Param        topic_id  path  int  true  "Topic ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Topic not found"
// @Router       /meetings/topics/{topic_id} [delete]
func (h *Meeting) DeleteTopic(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	topicID, err := parseID(c, "topic_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteTopic(c.Request().Context(), ownerID, topicID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExtractTasks handles POST /meetings/:id/extract-tasks
// @Summary      Suggest tasks from meeting notes
// @Description  Nothing is stored. Empty notes give an empty list.
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.ExtractTasksResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/extract-tasks [post]
func (h *Meeting) ExtractTasks(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	suggested, err := h.meetingService.ExtractTasks(c.Request().Context(), ownerID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if suggested == nil {
		suggested = []analyzer.SuggestedTask{}
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &meetingDTO.ExtractTasksResponse{SuggestedTasks: suggested})
}

func toActionItemInput(req meetingDTO.ActionItemRequest) meetings.ActionItemInput {
	return meetings.ActionItemInput{
		Description: req.Description,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate.Ptr(),
		Status:      entities.Status(req.Status),
		Notes:       req.Notes,
	}
}

func toTopicInput(req meetingDTO.TopicRequest) meetings.TopicInput {
	return meetings.TopicInput{
		Name:      req.Name,
		Category:  req.Category,
		Sentiment: req.Sentiment,
		Notes:     req.Notes,
	}
}
