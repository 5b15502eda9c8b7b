package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
	pkgvalidator "github.com/johnquangdev/one-on-one-manager/pkg/validator"
)

const (
	serviceName    = "One-on-One Manager API"
	serviceVersion = "1.0.0"
)

// Handlers groups the resource handlers mounted under /api
type Handlers struct {
	Auth      *Auth
	Person    *Person
	Meeting   *Meeting
	Task      *Task
	Calendar  *Calendar
	Note      *Note
	Analytics *Analytics
}

// Router holds all handlers and the middleware they run behind
type Router struct {
	cfg        *config.Config
	handlers   Handlers
	authMW     echo.MiddlewareFunc
	txMW       echo.MiddlewareFunc
	requestMWs []echo.MiddlewareFunc
	logger     *zap.Logger
}

// NewRouter creates a new router. authMW guards every /api route except
// the public account endpoints; txMW opens the per-request transaction.
// requestMWs run for every request, after the request id is assigned.
func NewRouter(
	cfg *config.Config,
	handlers Handlers,
	authMW echo.MiddlewareFunc,
	txMW echo.MiddlewareFunc,
	requestMWs []echo.MiddlewareFunc,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		handlers:   handlers,
		authMW:     authMW,
		txMW:       txMW,
		requestMWs: requestMWs,
		logger:     logger,
	}
}

// Setup configures the echo instance and all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(rt.logger)
	e.Validator = pkgvalidator.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	for _, mw := range rt.requestMWs {
		e.Use(mw)
	}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     rt.cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: !rt.cfg.Server.AllowsAnyOrigin(),
	}))

	e.GET("/health", rt.healthCheck)
	e.GET("/", rt.welcome)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	rt.setupUserRoutes(api)

	protected := api.Group("", rt.authMW)

	// No request transaction here: an LLM call must not hold a store connection.
	rt.setupAIRoutes(protected)

	tx := protected.Group("", rt.txMW)
	rt.setupPeopleRoutes(tx)
	rt.setupMeetingRoutes(tx)
	rt.setupTaskRoutes(tx)
	rt.setupCalendarRoutes(tx)
	rt.setupNoteRoutes(tx)
	rt.setupAnalyticsRoutes(tx)
}

// setupAIRoutes configures the routes that call out to an LLM
func (rt *Router) setupAIRoutes(g *echo.Group) {
	g.POST("/meetings/:id/extract-tasks", rt.handlers.Meeting.ExtractTasks)
	g.POST("/calendar/extract-from-screenshot", rt.handlers.Calendar.ExtractFromScreenshot)
	g.POST("/analytics/analyze", rt.handlers.Analytics.Analyze)
}

// setupUserRoutes configures account routes
func (rt *Router) setupUserRoutes(g *echo.Group) {
	h := rt.handlers.Auth
	users := g.Group("/users")

	users.POST("/register", h.Register, rt.txMW)
	users.POST("/login", h.Login, rt.txMW)
	users.POST("/refresh", h.RefreshToken, rt.txMW)
	users.GET("/check/:username", h.CheckUsername, rt.txMW)

	users.GET("/me", h.Me, rt.authMW, rt.txMW)
	users.POST("/migrate-data", h.MigrateData, rt.authMW, rt.txMW)
}

// setupPeopleRoutes configures people routes
func (rt *Router) setupPeopleRoutes(g *echo.Group) {
	h := rt.handlers.Person
	people := g.Group("/employees")

	people.GET("", h.List)
	people.POST("", h.Create)
	people.GET("/:id", h.Get)
	people.PUT("/:id", h.Update)
	people.DELETE("/:id", h.Delete)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	h := rt.handlers.Meeting
	meetings := g.Group("/meetings")

	meetings.GET("", h.List)
	meetings.POST("", h.Create)
	meetings.GET("/:id", h.Get)
	meetings.PUT("/:id", h.Update)
	meetings.DELETE("/:id", h.Delete)

	meetings.POST("/:id/action-items", h.AddActionItem)
	meetings.PUT("/action-items/:item_id", h.UpdateActionItem)
	meetings.DELETE("/action-items/:item_id", h.DeleteActionItem)

	meetings.POST("/:id/topics", h.AddTopic)
	meetings.DELETE("/topics/:topic_id", h.DeleteTopic)
}

// setupTaskRoutes configures task routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	h := rt.handlers.Task
	tasks := g.Group("/tasks")

	tasks.GET("", h.List)
	tasks.POST("", h.Create)
	tasks.GET("/my", h.My)
	tasks.GET("/today", h.Today)
	tasks.GET("/assigned-to-me", h.AssignedToMe)
	tasks.GET("/discuss/:person_id", h.DiscussWith)
	tasks.POST("/bulk", h.CreateBulk)
	tasks.GET("/:id", h.Get)
	tasks.PUT("/:id", h.Update)
	tasks.DELETE("/:id", h.Delete)
	tasks.POST("/:id/complete", h.Complete)
}

// setupCalendarRoutes configures calendar routes
func (rt *Router) setupCalendarRoutes(g *echo.Group) {
	h := rt.handlers.Calendar
	calendar := g.Group("/calendar")

	calendar.GET("", h.Day)
	calendar.GET("/week", h.Week)
	calendar.POST("", h.Create)
	calendar.POST("/import", h.Import)
	calendar.GET("/:id", h.Get)
	calendar.PUT("/:id", h.Update)
	calendar.DELETE("/:id", h.Delete)

	calendar.POST("/:id/notes", h.AddPrepNote)
	calendar.PUT("/:id/notes/:note_id", h.UpdatePrepNote)
	calendar.DELETE("/:id/notes/:note_id", h.DeletePrepNote)
	calendar.POST("/:id/notes/:note_id/toggle", h.TogglePrepNote)
}

// setupNoteRoutes configures quick note routes
func (rt *Router) setupNoteRoutes(g *echo.Group) {
	h := rt.handlers.Note
	notes := g.Group("/notes")

	notes.GET("", h.List)
	notes.POST("", h.Create)
	notes.GET("/:id", h.Get)
	notes.PUT("/:id", h.Update)
	notes.DELETE("/:id", h.Delete)
	notes.POST("/:id/toggle-pin", h.TogglePin)
}

// setupAnalyticsRoutes configures reporting routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	h := rt.handlers.Analytics
	analytics := g.Group("/analytics")

	analytics.GET("/overview", h.Overview)
	analytics.GET("/employee/:id", h.Employee)
	analytics.GET("/action-items/pending", h.PendingActionItems)
	analytics.GET("/topics/trends", h.TopicTrends)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &common.HealthResponse{Status: "healthy"})
}

// welcome returns the service name and version
func (rt *Router) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, &common.ServiceInfoResponse{
		Message: serviceName,
		Version: serviceVersion,
		Docs:    "/docs",
	})
}
