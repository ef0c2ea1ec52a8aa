package handlers

import (
	"errors"
	"net/http"

	"duartecontrol/services"

	"github.com/labstack/echo/v4"
)

// Package-level service instances, wired once at startup (and per test).
var (
	Cases     *services.CaseService
	Lawyers   *services.LawyerService
	Deadlines *services.DeadlineService
	Insight   *services.InsightService
)

// Init wires the handler package against a record store and the insight
// service.
func Init(store *services.RecordStore, insight *services.InsightService) {
	Cases = services.NewCaseService(store)
	Lawyers = services.NewLawyerService(store)
	Deadlines = services.NewDeadlineService(store)
	Insight = insight
}

// serviceError translates service-layer errors into HTTP errors. Validation
// and reference problems are the caller's fault; everything else is a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrProcessNumberRequired),
		errors.Is(err, services.ErrAuthorRequired),
		errors.Is(err, services.ErrLawyerRequired),
		errors.Is(err, services.ErrInvalidCaseStatus),
		errors.Is(err, services.ErrLawyerNameRequired),
		errors.Is(err, services.ErrDeadlineTitleRequired),
		errors.Is(err, services.ErrInvalidDeadlineDate),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidDeadlineType),
		errors.Is(err, services.ErrInvalidSubType),
		errors.Is(err, services.ErrUnknownLawyer),
		errors.Is(err, services.ErrUnknownCase):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrLawyerInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal error")
	}
}
