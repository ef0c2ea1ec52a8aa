package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"duartecontrol/config"
	"duartecontrol/db"
	"duartecontrol/models"
	"duartecontrol/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests from each other
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.User{}, &models.Session{}, &models.RecordSet{})
	assert.NoError(t, err)

	// Set global DB and rewire the handler services against it
	db.DB = testDB
	Init(services.NewRecordStore(testDB, 0), services.NewInsightService("", "gemini-2.5-flash"))

	// Fresh local storage per test so offloaded documents stay isolated
	services.Storage = services.NewLocalStorage(t.TempDir())

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{Environment: "test"})

	return e, c, rec
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return strings.NewReader(string(data))
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// createTestUser inserts an active user with a known password.
func createTestUser(t *testing.T, testDB *gorm.DB, email, password, role string) *models.User {
	hash, err := services.HashPassword(password)
	assert.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	assert.NoError(t, testDB.Create(user).Error)
	return user
}

// createTestCase registers a case through the service layer using a seeded
// lawyer.
func createTestCase(t *testing.T, processNumber, author, lawyerID string) models.LegalCase {
	created, err := Cases.Create(context.Background(), services.CaseInput{
		ProcessNumber: processNumber,
		Author:        author,
		LawyerID:      lawyerID,
	})
	assert.NoError(t, err)
	return created
}
