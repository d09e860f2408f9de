package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	srverrors "github.com/tasknest/tasknest/server/internal/errors"
)

// ErrorResponse is the JSON error body for all v1 endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetHabitsReport builds the habits report for one user.
// GET /api/v1/habits/report?user_id=1&days=30&llm=true
func (s *APIV1Service) GetHabitsReport(c echo.Context) error {
	userID, err := parseUserID(c.QueryParam("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer"})
		}
	}

	useLLM := false
	if raw := c.QueryParam("llm"); raw != "" {
		useLLM, err = strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "llm must be a boolean"})
		}
	}

	report, err := s.HabitsService.BuildReport(c.Request().Context(), userID, days, useLLM)
	if err != nil {
		return habitsErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func parseUserID(raw string) (int32, error) {
	if raw == "" {
		return 0, errors.New("user_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("user_id must be a positive integer")
	}
	return int32(id), nil
}

func habitsErrorResponse(c echo.Context, err error) error {
	switch {
	case srverrors.IsCode(err, srverrors.ErrCodeInvalidArgument):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case srverrors.IsCode(err, srverrors.ErrCodeUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case srverrors.IsCode(err, srverrors.ErrCodeStoreUnavailable):
		slog.Error("habits report store failure", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable"})
	default:
		slog.Error("habits report failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
