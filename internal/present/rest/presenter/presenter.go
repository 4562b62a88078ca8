package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// Unauthorized carries a fixed message so a denied request never reveals
// whether the session or the permission was at fault.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
}

func Unavailable(c echo.Context, err error) error {
	slog.WarnContext(c.Request().Context(), "backing store unavailable",
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "backing store unavailable"})
}

// InternalError logs the cause but returns a generic message; raw store
// structure must not leak to the caller.
func InternalError(c echo.Context, err error) error {
	slog.ErrorContext(c.Request().Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
