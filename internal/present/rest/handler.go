package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/campusops/roster"
	"github.com/campusops/roster/internal/domain"
	"github.com/campusops/roster/internal/present/rest/presenter"
	"github.com/campusops/roster/internal/usecase"
)

type Handler struct {
	report *usecase.ReportUsecase
}

func NewHandler(report *usecase.ReportUsecase) *Handler {
	return &Handler{
		report: report,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/service", h.handleService)
	e.GET("/api/v1/users", h.handleListUsers)
	e.GET("/api/v1/courses", h.handleListCourses)
	e.GET("/api/v1/users/courses", h.handleListUsersCourses)
}

func (h *Handler) handleService(c echo.Context) error {
	return presenter.OK(c, roster.ServiceDocument())
}

func (h *Handler) handleListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.report.ListUsers(ctx, requesterFrom(c), rawParams(c))
	if err != nil {
		return presentError(c, err)
	}
	return presenter.OK(c, records)
}

func (h *Handler) handleListCourses(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.report.ListCourses(ctx, requesterFrom(c), rawParams(c))
	if err != nil {
		return presentError(c, err)
	}
	return presenter.OK(c, records)
}

func (h *Handler) handleListUsersCourses(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.report.ListUsersCourses(ctx, requesterFrom(c), rawParams(c))
	if err != nil {
		return presentError(c, err)
	}
	return presenter.OK(c, records)
}

// requesterFrom reads the requester the auth middleware resolved. An
// unresolved context yields the zero requester, which holds no capability
// and is denied by the operation gate.
func requesterFrom(c echo.Context) domain.Requester {
	requester, ok := c.Request().Context().Value(domain.RequesterCtxKey).(domain.Requester)
	if !ok {
		return domain.Requester{}
	}
	return requester
}

func rawParams(c echo.Context) map[string]string {
	raw := make(map[string]string)
	for name, values := range c.QueryParams() {
		if len(values) > 0 {
			raw[name] = values[0]
		}
	}
	return raw
}

func presentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		return presenter.BadRequest(c, err)
	case errors.Is(err, domain.ErrUnauthorized):
		return presenter.Unauthorized(c)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return presenter.Unavailable(c, err)
	default:
		return presenter.InternalError(c, err)
	}
}
