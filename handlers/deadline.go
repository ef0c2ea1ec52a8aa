package handlers

import (
	"net/http"
	"time"

	"duartecontrol/services"

	"github.com/labstack/echo/v4"
)

// GetDeadlinesHandler returns the agenda: all deadlines sorted by date, each
// annotated with urgency, overdue state and days left relative to today.
func GetDeadlinesHandler(c echo.Context) error {
	entries, err := Deadlines.Agenda(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateDeadlineHandler registers a new deadline
func CreateDeadlineHandler(c echo.Context) error {
	var in services.DeadlineInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	created, err := Deadlines.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateDeadlineHandler rewrites a deadline, preserving its completion state
func UpdateDeadlineHandler(c echo.Context) error {
	var in services.DeadlineInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, ok, err := Deadlines.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Deadline not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// ToggleDeadlineHandler flips the completion flag of a deadline
func ToggleDeadlineHandler(c echo.Context) error {
	updated, ok, err := Deadlines.ToggleCompleted(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Deadline not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteDeadlineHandler removes a deadline
func DeleteDeadlineHandler(c echo.Context) error {
	ok, err := Deadlines.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Deadline not found")
	}
	return c.NoContent(http.StatusNoContent)
}
