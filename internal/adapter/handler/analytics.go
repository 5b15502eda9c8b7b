package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/analytics"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analytics"
)

// Analytics handles reporting and analysis HTTP requests
type Analytics struct {
	analyticsService analytics.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Overview handles GET /analytics/overview
// @Summary      Dashboard overview
// @Description  Defaults to the last 180 days
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  false  "Window start"
// @Param        end_date    query     string  false  "Window end"
// @Success      200         {object}  analytics.OverviewResponse
// @Router       /analytics/overview [get]
func (h *Analytics) Overview(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req analyticsDTO.WindowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	overview, err := h.analyticsService.Overview(c.Request().Context(), ownerID, toWindow(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToOverviewResponse(overview))
}

// Employee handles GET /analytics/employee/:id
// @Summary      Per-person report
// @Description  Defaults to the last 365 days
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      int     true   "Person ID"
// @Param        start_date  query     string  false  "Window start"
// @Param        end_date    query     string  false  "Window end"
// @Success      200         {object}  analytics.EmployeeAnalyticsResponse
// @Failure      404         {object}  map[string]interface{}  "Employee not found"
// @Router       /analytics/employee/{id} [get]
func (h *Analytics) Employee(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req analyticsDTO.WindowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.analyticsService.Employee(c.Request().Context(), ownerID, id, toWindow(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEmployeeAnalyticsResponse(summary))
}

// PendingActionItems handles GET /analytics/action-items/pending
// @Summary      Open action items
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  query     int  false  "Only this person"
// @Success      200          {array}   analytics.PendingActionItemResponse
// @Router       /analytics/action-items/pending [get]
func (h *Analytics) PendingActionItems(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req analyticsDTO.PendingActionItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var employeeID *uint
	if req.EmployeeID != 0 {
		employeeID = &req.EmployeeID
	}

	rows, err := h.analyticsService.PendingActionItems(c.Request().Context(), ownerID, employeeID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPendingActionItemResponses(rows))
}

// Analyze handles POST /analytics/analyze
// @Summary      Analyze meeting notes
// @Description  Uses the configured AI provider, falling back to keyword rules. The result is stored on the meeting.
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      analytics.AnalyzeRequest  true  "Notes"
// @Success      200      {object}  analyzer.Analysis
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /analytics/analyze [post]
func (h *Analytics) Analyze(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req analyticsDTO.AnalyzeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	analysis, err := h.analyticsService.Analyze(c.Request().Context(), ownerID, req.MeetingID, req.Notes)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, analysis)
}

// TopicTrends handles GET /analytics/topics/trends
// @Summary      Topic counts per month
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        months  query     int  false  "Months back (1-24)"  default(6)
// @Success      200     {object}  map[string]map[string]int
// @Router       /analytics/topics/trends [get]
func (h *Analytics) TopicTrends(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	req := analyticsDTO.TopicTrendsRequest{Months: 6}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	trends, err := h.analyticsService.TopicTrends(c.Request().Context(), ownerID, req.Months)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, trends)
}

func toWindow(req *analyticsDTO.WindowRequest) analytics.Window {
	return analytics.Window{
		From: req.StartDate.Ptr(),
		To:   req.EndDate.Ptr(),
	}
}
