package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

// Error response shape
type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads the id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the JSON body with the given status
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// ErrorHandler renders errors returned from handlers and middleware
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(toAppError(err).HTTPCode)
			return
		}
		if writeErr := HandleError(logger, c, err); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

// toAppError maps use case and domain errors onto the wire taxonomy
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrPersonNotFound):
		return errors.ErrNotFound("Employee")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return errors.ErrNotFound("Action item")
	case stdErrors.Is(err, usecaseErrors.ErrTopicNotFound):
		return errors.ErrNotFound("Topic")
	case stdErrors.Is(err, usecaseErrors.ErrTaskNotFound):
		return errors.ErrNotFound("Task")
	case stdErrors.Is(err, usecaseErrors.ErrCalendarMeetingNotFound):
		return errors.ErrNotFound("Calendar meeting")
	case stdErrors.Is(err, usecaseErrors.ErrPrepNoteNotFound):
		return errors.ErrNotFound("Prep note")
	case stdErrors.Is(err, usecaseErrors.ErrNoteNotFound):
		return errors.ErrNotFound("Note")
	case stdErrors.Is(err, usecaseErrors.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrNotFound), stdErrors.Is(err, entities.ErrNotFound):
		return errors.ErrNotFound("Resource")

	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		return errors.ErrInvalidRefreshToken()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()

	case stdErrors.Is(err, usecaseErrors.ErrUsernameTaken):
		return errors.ErrAlreadyExists("Username")
	case stdErrors.Is(err, usecaseErrors.ErrExternalIDTaken):
		return errors.ErrAlreadyExists("Meeting with this external ID")
	case stdErrors.Is(err, usecaseErrors.ErrAlreadyExists):
		return errors.ErrAlreadyExists("Resource")

	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, usecaseErrors.ErrInvalidTimeRange),
		stdErrors.Is(err, usecaseErrors.ErrInvalidDate),
		stdErrors.Is(err, entities.ErrInvalidStatus),
		stdErrors.Is(err, entities.ErrInvalidPriority),
		stdErrors.Is(err, entities.ErrInvalidTaskType),
		stdErrors.Is(err, entities.ErrInvalidPersonType),
		stdErrors.Is(err, entities.ErrInvalidCategory),
		stdErrors.Is(err, entities.ErrInvalidSource):
		return errors.ErrInvalidArgument(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrScreenshotFailed):
		return errors.ErrScreenshotExtractionFailed(err)
	}

	return errors.ErrInternal(err)
}

func fromHTTPError(httpErr *echo.HTTPError) errors.AppError {
	code := errors.ErrorCode_INTERNAL
	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		code = errors.ErrorCode_INVALID_PAYLOAD
	case http.StatusUnauthorized:
		code = errors.ErrorCode_UNAUTHENTICATED
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = errors.ErrorCode_NOT_FOUND
	}
	return errors.AppError{
		Raw:      httpErr.Internal,
		HTTPCode: httpErr.Code,
		Code:     code,
		Message:  fmt.Sprint(httpErr.Message),
	}
}

// bindAndValidate binds the request into req and runs its validate tags
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	return c.Validate(req)
}

// currentUserID returns the caller's id set by the auth middleware
func currentUserID(c echo.Context) (uint, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, errors.ErrUnauthenticated()
	}
	return id, nil
}

// parseID reads a numeric path parameter
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidArgument(fmt.Sprintf("%s must be a positive integer", name)).WithDetail(name, raw)
	}
	return uint(id), nil
}
