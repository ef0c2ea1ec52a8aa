package handlers

import (
	"net/http"
	"testing"

	"duartecontrol/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetLawyersHandlerSeedsOnFirstRead(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/lawyers", nil)

	assert.NoError(t, GetLawyersHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var lawyers []models.Lawyer
	decodeJSON(t, rec, &lawyers)
	assert.Len(t, lawyers, 2)
	assert.Equal(t, "Dra. Ana Costa", lawyers[0].Name)
}

func TestCreateLawyerHandler(t *testing.T) {
	setupTestDB(t)

	t.Run("creates", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/lawyers", jsonBody(t, map[string]string{
			"name": "Dr. Carlos Lima",
			"oab":  "55555/MG",
		}))

		assert.NoError(t, CreateLawyerHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.Lawyer
		decodeJSON(t, rec, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Dr. Carlos Lima", created.Name)
	})

	t.Run("blank name is a 400", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/lawyers", jsonBody(t, map[string]string{
			"name": "  ",
		}))

		err := CreateLawyerHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestUpdateLawyerHandlerPropagatesRename(t *testing.T) {
	setupTestDB(t)
	created := createTestCase(t, "100", "Maria", "l1")

	_, c, rec := setupEcho(http.MethodPut, "/api/lawyers/l1", jsonBody(t, map[string]string{
		"name": "Dra. Ana B. Costa",
		"oab":  "12345/SP",
	}))
	c.SetParamNames("id")
	c.SetParamValues("l1")

	assert.NoError(t, UpdateLawyerHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The cached name on the referencing case was rewritten.
	_, c2, rec2 := setupEcho(http.MethodGet, "/api/cases/"+created.ID, nil)
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID)
	assert.NoError(t, GetCaseHandler(c2))

	var reloaded models.LegalCase
	decodeJSON(t, rec2, &reloaded)
	assert.Equal(t, "Dra. Ana B. Costa", reloaded.Lawyer)
}

func TestDeleteLawyerHandler(t *testing.T) {
	setupTestDB(t)

	t.Run("blocked while referenced", func(t *testing.T) {
		created := createTestCase(t, "100", "Maria", "l1")

		_, c, _ := setupEcho(http.MethodDelete, "/api/lawyers/l1", nil)
		c.SetParamNames("id")
		c.SetParamValues("l1")

		err := DeleteLawyerHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)

		// Unblock by removing the referencing case.
		_, c, _ = setupEcho(http.MethodDelete, "/api/cases/"+created.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(created.ID)
		assert.NoError(t, DeleteCaseHandler(c))

		_, c, rec := setupEcho(http.MethodDelete, "/api/lawyers/l1", nil)
		c.SetParamNames("id")
		c.SetParamValues("l1")
		assert.NoError(t, DeleteLawyerHandler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodDelete, "/api/lawyers/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := DeleteLawyerHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
