package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	personDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/person"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/people"
)

// Person handles people HTTP requests
type Person struct {
	peopleService people.Service
	logger        *zap.Logger
}

// NewPersonHandler creates a new people handler
func NewPersonHandler(peopleService people.Service, logger *zap.Logger) *Person {
	return &Person{
		peopleService: peopleService,
		logger:        logger,
	}
}

// List handles GET /employees
// @Summary      List people
// @Tags         Employees
// @Produce      json
// @Security     BearerAuth
// @Param        skip         query     int     false  "Offset"             default(0)
// @Param        limit        query     int     false  "Page size (1-100)"  default(100)
// @Param        active_only  query     bool    false  "Only active people" default(true)
// @Param        person_type  query     string  false  "employee, colleague or manager"
// @Param        search       query     string  false  "Name, role or department"
// @Success      200          {array}   person.PersonResponse
// @Router       /employees [get]
func (h *Person) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	req := personDTO.ListPeopleRequest{Limit: 100, ActiveOnly: true}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.PersonFilters{
		OwnerID:    ownerID,
		ActiveOnly: req.ActiveOnly,
		Search:     req.Search,
		Limit:      req.Limit,
		Offset:     req.Skip,
	}
	if req.PersonType != "" {
		personType := entities.PersonType(req.PersonType)
		filters.PersonType = &personType
	}

	rows, err := h.peopleService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPersonResponses(rows))
}

// Get handles GET /employees/:id
// @Summary      Get a person
// @Tags         Employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Person ID"
// @Success      200  {object}  person.PersonResponse
// @Failure      404  {object}  map[string]interface{}  "Employee not found"
// @Router       /employees/{id} [get]
func (h *Person) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.peopleService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPersonResponse(p))
}

// Create handles POST /employees
// @Summary      Add a person
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      person.CreatePersonRequest  true  "Person"
// @Success      201      {object}  person.PersonResponse
// @Failure      400      {object}  map[string]interface{}
// @Router       /employees [post]
func (h *Person) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req personDTO.CreatePersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.peopleService.Create(c.Request().Context(), ownerID, people.CreateInput{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
		StartDate:  req.StartDate.Ptr(),
		Notes:      req.Notes,
		PersonType: entities.PersonType(req.PersonType),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToPersonResponse(p))
}

// Update handles PUT /employees/:id
// @Summary      Update a person
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                         true  "Person ID"
// @Param        request  body      person.UpdatePersonRequest  true  "Fields to change"
// @Success      200      {object}  person.PersonResponse
// @Failure      404      {object}  map[string]interface{}  "Employee not found"
// @Router       /employees/{id} [put]
func (h *Person) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req personDTO.UpdatePersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := people.UpdateInput{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
		StartDate:  req.StartDate.Ptr(),
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	}
	if req.PersonType != nil {
		personType := entities.PersonType(*req.PersonType)
		input.PersonType = &personType
	}

	p, err := h.peopleService.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPersonResponse(p))
}

// Delete handles DELETE /employees/:id
// @Summary      Deactivate or remove a person
// @Description  Deactivates by default. hard_delete=true removes the person with their meetings and tasks.
// @Tags         Employees
// @Security     BearerAuth
// @Param        id           path   int   true   "Person ID"
// @Param        hard_delete  query  bool  false  "Remove permanently"
// @Success      204
// @Failure      404  {object}  map[string]interface{}  "Employee not found"
// @Router       /employees/{id} [delete]
func (h *Person) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req personDTO.DeletePersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.peopleService.Delete(c.Request().Context(), ownerID, id, req.HardDelete); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
