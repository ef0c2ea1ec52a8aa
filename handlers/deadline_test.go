package handlers

import (
	"net/http"
	"testing"
	"time"

	"duartecontrol/models"
	"duartecontrol/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreateDeadlineHandler(t *testing.T) {
	setupTestDB(t)

	t.Run("creates with defaults", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, services.DeadlineInput{
			Title: "Audiência de conciliação",
			Date:  "2025-04-01",
		}))

		assert.NoError(t, CreateDeadlineHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.Deadline
		decodeJSON(t, rec, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.DeadlinePriorityMedium, created.Priority)
		assert.Equal(t, models.DeadlineTypeGeneral, created.Type)
	})

	t.Run("invalid date is a 400", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, services.DeadlineInput{
			Title: "Contestação",
			Date:  "01/04/2025",
		}))

		err := CreateDeadlineHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("unknown case link is a 400", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, services.DeadlineInput{
			Title:  "Recurso",
			Date:   "2025-04-01",
			CaseID: "missing",
		}))

		err := CreateDeadlineHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetDeadlinesHandlerAgenda(t *testing.T) {
	setupTestDB(t)

	today := time.Now().UTC()
	overdueDate := today.AddDate(0, 0, -3).Format("2006-01-02")
	urgentDate := today.AddDate(0, 0, 2).Format("2006-01-02")

	for _, in := range []services.DeadlineInput{
		{Title: "Vencido", Date: overdueDate},
		{Title: "Em cima", Date: urgentDate},
	} {
		_, c, _ := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, in))
		assert.NoError(t, CreateDeadlineHandler(c))
	}

	_, c, rec := setupEcho(http.MethodGet, "/api/deadlines", nil)
	assert.NoError(t, GetDeadlinesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []services.AgendaEntry
	decodeJSON(t, rec, &entries)
	assert.Len(t, entries, 2)

	// Sorted ascending, flags set.
	assert.Equal(t, "Vencido", entries[0].Title)
	assert.True(t, entries[0].Overdue)
	assert.Equal(t, "Em cima", entries[1].Title)
	assert.True(t, entries[1].Urgent)
}

func TestToggleDeadlineHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, services.DeadlineInput{
		Title: "Alegações finais",
		Date:  "2025-05-01",
	}))
	assert.NoError(t, CreateDeadlineHandler(c))

	var created models.Deadline
	decodeJSON(t, rec, &created)

	_, c, rec = setupEcho(http.MethodPost, "/api/deadlines/"+created.ID+"/toggle", nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	assert.NoError(t, ToggleDeadlineHandler(c))

	var toggled models.Deadline
	decodeJSON(t, rec, &toggled)
	assert.True(t, toggled.Completed)
}

func TestUpdateAndDeleteDeadlineHandlers(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodPost, "/api/deadlines", jsonBody(t, services.DeadlineInput{
		Title: "Contestação",
		Date:  "2025-05-01",
	}))
	assert.NoError(t, CreateDeadlineHandler(c))

	var created models.Deadline
	decodeJSON(t, rec, &created)

	t.Run("update", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPut, "/api/deadlines/"+created.ID, jsonBody(t, services.DeadlineInput{
			Title:    "Contestação (revisada)",
			Date:     "2025-05-05",
			Priority: models.DeadlinePriorityHigh,
		}))
		c.SetParamNames("id")
		c.SetParamValues(created.ID)

		assert.NoError(t, UpdateDeadlineHandler(c))

		var updated models.Deadline
		decodeJSON(t, rec, &updated)
		assert.Equal(t, "Contestação (revisada)", updated.Title)
		assert.Equal(t, models.DeadlinePriorityHigh, updated.Priority)
	})

	t.Run("delete", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/api/deadlines/"+created.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(created.ID)

		assert.NoError(t, DeleteDeadlineHandler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete again is a 404", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodDelete, "/api/deadlines/"+created.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(created.ID)

		err := DeleteDeadlineHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
