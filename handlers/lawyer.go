package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type lawyerRequest struct {
	Name string `json:"name"`
	OAB  string `json:"oab"`
}

// GetLawyersHandler lists all registered lawyers
func GetLawyersHandler(c echo.Context) error {
	lawyers, err := Lawyers.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, lawyers)
}

// CreateLawyerHandler registers a new lawyer
func CreateLawyerHandler(c echo.Context) error {
	var req lawyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	created, err := Lawyers.Create(c.Request().Context(), req.Name, req.OAB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateLawyerHandler renames a lawyer. The cached name on every case that
// references the lawyer is rewritten in the same call.
func UpdateLawyerHandler(c echo.Context) error {
	var req lawyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, ok, err := Lawyers.Update(c.Request().Context(), c.Param("id"), req.Name, req.OAB)
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Lawyer not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteLawyerHandler removes a lawyer. Deletion is refused with 409 while
// any case still references the lawyer.
func DeleteLawyerHandler(c echo.Context) error {
	ok, err := Lawyers.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Lawyer not found")
	}
	return c.NoContent(http.StatusNoContent)
}
