package handler

import (
	"errors"
	"fmt"
	"net/http"

	"maritime-service/pkg/httperr"
	"maritime-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler translates errors bubbling out of handlers into responses.
// Service faults keep their status and message; echo's own errors (routing,
// binding, validation) keep theirs; everything else becomes a generic 500 so
// internals never leak to clients.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var fault *httperr.Error
	if errors.As(err, &fault) {
		_ = c.JSON(fault.Status, echo.Map{"message": fault.Message})
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, echo.Map{"message": fmt.Sprintf("%v", he.Message)})
		return
	}

	logger.FromContext(c).Error("Unhandled error while processing request",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"statusCode": http.StatusInternalServerError,
		"message":    "An unexpected error occurred. Please try again later.",
	})
}
