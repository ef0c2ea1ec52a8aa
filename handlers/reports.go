package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"duartecontrol/services"

	"github.com/labstack/echo/v4"
)

// ExportCasesCSVHandler streams the case collection as CSV. The same term and
// mode query parameters as the list endpoint apply, so a filtered view can be
// exported as-is.
func ExportCasesCSVHandler(c echo.Context) error {
	cases, err := Cases.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	term := c.QueryParam("term")
	mode := services.SearchMode(c.QueryParam("mode"))
	if term != "" {
		if !services.IsValidSearchMode(mode) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid search mode")
		}
		cases = services.FilterCases(cases, term, mode)
	}

	c.Response().Header().Set("Content-Type", "text/csv")
	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=cases_report_%s.csv", time.Now().Format("20060102_150405")))

	writer := csv.NewWriter(c.Response().Writer)
	defer writer.Flush()

	header := []string{
		"Process Number", "Author", "Lawyer", "Status", "Date Added",
		"Description", "Has Document",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, lc := range cases {
		hasDoc := "No"
		if lc.HasDocument() {
			hasDoc = "Yes"
		}
		row := []string{
			lc.ProcessNumber,
			lc.Author,
			lc.Lawyer,
			lc.Status,
			lc.DateAdded.Format("2006-01-02"),
			lc.Description,
			hasDoc,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// ExportAgendaXLSXHandler downloads the deadline agenda as an Excel workbook.
func ExportAgendaXLSXHandler(c echo.Context) error {
	entries, err := Deadlines.Agenda(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return serviceError(err)
	}

	buf, err := services.GenerateAgendaWorkbook(entries)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate workbook")
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=agenda_%s.xlsx", time.Now().Format("20060102")))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
