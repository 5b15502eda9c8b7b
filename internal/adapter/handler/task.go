package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/errors"
	taskDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/task"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/tasks"
)

// Task handles task HTTP requests
type Task struct {
	taskService tasks.Service
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService tasks.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// List handles GET /tasks
// @Summary      List tasks
// @Description  Newest first. Counts cover every matching task, not only the page.
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        skip       query     int     false  "Offset"             default(0)
// @Param        limit      query     int     false  "Page size (1-100)"  default(100)
// @Param        task_type  query     string  false  "personal, discuss_with or from_meeting"
// @Param        status     query     string  false  "pending, in_progress, completed or cancelled"
// @Param        priority   query     string  false  "low, medium or high"
// @Param        person_id  query     int     false  "Person ID"
// @Success      200        {object}  task.TasksListResponse
// @Router       /tasks [get]
func (h *Task) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	req := taskDTO.ListTasksRequest{Limit: 100}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.TaskFilters{
		OwnerID: ownerID,
		Limit:   req.Limit,
		Offset:  req.Skip,
	}
	if req.TaskType != "" {
		taskType := entities.TaskType(req.TaskType)
		filters.TaskType = &taskType
	}
	if req.Status != "" {
		status := entities.Status(req.Status)
		filters.Status = &status
	}
	if req.Priority != "" {
		priority := entities.Priority(req.Priority)
		filters.Priority = &priority
	}
	if req.PersonID != 0 {
		filters.PersonID = &req.PersonID
	}

	rows, counts, err := h.taskService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTasksListResponse(rows, counts))
}

// My handles GET /tasks/my
// @Summary      Personal tasks
// @Description  Due date ascending with undated last, then newest first
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   task.TaskResponse
// @Router       /tasks/my [get]
func (h *Task) My(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.MyTasksRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var status *entities.Status
	if req.Status != "" {
		s := entities.Status(req.Status)
		status = &s
	}

	rows, err := h.taskService.My(c.Request().Context(), ownerID, status)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponses(rows))
}

// DiscussWith handles GET /tasks/discuss/:person_id
// @Summary      Topics to raise with a person
// @Description  Priority high to low, then newest first
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        person_id          path      int   true   "Person ID"
// @Param        include_completed  query     bool  false  "Include completed tasks"
// @Success      200                {array}   task.TaskResponse
// @Failure      404                {object}  map[string]interface{}  "Employee not found"
// @Router       /tasks/discuss/{person_id} [get]
func (h *Task) DiscussWith(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	personID, err := parseID(c, "person_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.IncludeCompletedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	rows, err := h.taskService.DiscussWith(c.Request().Context(), ownerID, personID, req.IncludeCompleted)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponses(rows))
}

// Today handles GET /tasks/today
// @Summary      Open tasks due by the end of today
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  task.TaskResponse
// @Router       /tasks/today [get]
func (h *Task) Today(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	rows, err := h.taskService.Today(c.Request().Context(), ownerID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponses(rows))
}

// AssignedToMe handles GET /tasks/assigned-to-me
// @Summary      Tasks other users raised about me
// @Description  Matched by name against the people other users track
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        include_completed  query     bool  false  "Include completed tasks"
// @Success      200                {array}   task.TaskResponse
// @Router       /tasks/assigned-to-me [get]
func (h *Task) AssignedToMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.IncludeCompletedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	rows, err := h.taskService.AssignedToMe(c.Request().Context(), userID, req.IncludeCompleted)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAssignedTaskResponses(rows))
}

// Get handles GET /tasks/:id
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  task.TaskResponse
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id} [get]
func (h *Task) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.taskService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponse(t))
}

// Create handles POST /tasks
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      task.CreateTaskRequest  true  "Task"
// @Success      201      {object}  task.TaskResponse
// @Failure      404      {object}  map[string]interface{}  "Employee or meeting not found"
// @Router       /tasks [post]
func (h *Task) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.taskService.Create(c.Request().Context(), ownerID, toCreateTaskInput(req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTaskResponse(t))
}

// CreateBulk handles POST /tasks/bulk
// @Summary      Create several tasks
// @Description  Every task is validated like a single create. Either all are stored or none.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      []task.CreateTaskRequest  true  "Tasks"
// @Success      201      {array}   task.TaskResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}  "Employee or meeting not found"
// @Router       /tasks/bulk [post]
func (h *Task) CreateBulk(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req []taskDTO.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if len(req) == 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("at least one task is required"))
	}

	inputs := make([]tasks.CreateInput, 0, len(req))
	for i := range req {
		if err := c.Validate(&req[i]); err != nil {
			return HandleError(h.logger, c, err)
		}
		inputs = append(inputs, toCreateTaskInput(req[i]))
	}

	created, err := h.taskService.CreateBulk(c.Request().Context(), ownerID, inputs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTaskResponses(created))
}

// Update handles PUT /tasks/:id
// @Summary      Update a task
// @Description  Moving to completed stamps completed_at
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                     true  "Task ID"
// @Param        request  body      task.UpdateTaskRequest  true  "Fields to change"
// @Success      200      {object}  task.TaskResponse
// @Failure      404      {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id} [put]
func (h *Task) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskDTO.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := tasks.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		PersonID:    req.PersonID,
		MeetingID:   req.MeetingID,
		DueDate:     req.DueDate.Ptr(),
	}
	if req.TaskType != nil {
		taskType := entities.TaskType(*req.TaskType)
		input.TaskType = &taskType
	}
	if req.Priority != nil {
		priority := entities.Priority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := entities.Status(*req.Status)
		input.Status = &status
	}

	t, err := h.taskService.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponse(t))
}

// Complete handles POST /tasks/:id/complete
// @Summary      Mark a task completed
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  task.TaskResponse
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id}/complete [post]
func (h *Task) Complete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.taskService.Complete(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponse(t))
}

// Delete handles DELETE /tasks/:id
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id} [delete]
func (h *Task) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.taskService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toCreateTaskInput(req taskDTO.CreateTaskRequest) tasks.CreateInput {
	return tasks.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    entities.TaskType(req.TaskType),
		Priority:    entities.Priority(req.Priority),
		Status:      entities.Status(req.Status),
		PersonID:    req.PersonID,
		MeetingID:   req.MeetingID,
		DueDate:     req.DueDate.Ptr(),
	}
}
