package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

// UnitOfWork opens one transaction per request and binds it to the request
// context. It commits when the handler returns no error with a status below
// 400, and rolls back on an error, an error status or a panic. The response
// is held back until the commit succeeds; a failed commit answers 500.
func UnitOfWork(db *gorm.DB, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			tx := db.WithContext(req.Context()).Begin()
			if tx.Error != nil {
				return errors.ErrDBTransactionFailed(tx.Error)
			}
			c.SetRequest(req.WithContext(database.WithTx(req.Context(), tx)))

			done := false
			defer func() {
				if !done {
					tx.Rollback()
				}
			}()

			res := c.Response()
			original := res.Writer
			held := &heldResponse{ResponseWriter: original}
			res.Writer = held
			defer func() {
				res.Writer = original
			}()

			err := next(c)
			done = true

			if err != nil || res.Status >= http.StatusBadRequest {
				if rbErr := tx.Rollback().Error; rbErr != nil {
					logger.Warn("rollback failed",
						zap.String("path", c.Path()),
						zap.Error(rbErr),
					)
				}
				held.release(logger)
				return err
			}

			if cmErr := tx.Commit().Error; cmErr != nil {
				logger.Error("commit failed",
					zap.String("request_id", requestID(c)),
					zap.String("path", c.Path()),
					zap.Error(cmErr),
				)
				res.Writer = original
				res.Committed = false
				res.Status = http.StatusOK
				res.Size = 0
				return errors.ErrDBTransactionFailed(cmErr)
			}

			held.release(logger)
			return nil
		}
	}
}

// heldResponse buffers status and body until release
type heldResponse struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *heldResponse) WriteHeader(code int) {
	w.status = code
}

func (w *heldResponse) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *heldResponse) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *heldResponse) release(logger *zap.Logger) {
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	if w.body.Len() == 0 {
		return
	}
	if _, err := w.ResponseWriter.Write(w.body.Bytes()); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
