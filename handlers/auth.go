package handlers

import (
	"net/http"
	"strings"
	"time"

	"duartecontrol/db"
	"duartecontrol/middleware"
	"duartecontrol/models"
	"duartecontrol/services"

	"github.com/labstack/echo/v4"
)

// Package level variable holding a real bcrypt hash, generated at startup so
// the not-found path costs the same as a genuine password check.
var globalDummyHash string

func init() {
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	globalDummyHash = hash
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler handles the login request and issues a session cookie
func LoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		// Timing attack mitigation: always run a bcrypt comparison
		services.VerifyPassword(globalDummyHash, req.Password)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if !services.VerifyPassword(user.Password, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if !user.IsActive {
		return echo.NewHTTPError(http.StatusUnauthorized, "Your account has been deactivated")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	middleware.SetSessionCookie(c, session.Token)

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	db.DB.Save(&user)

	return c.JSON(http.StatusOK, user)
}

// LogoutHandler deletes the session and clears the cookie
func LogoutHandler(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil {
		services.DeleteSession(db.DB, cookie.Value)
	}

	middleware.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// GetCurrentUserHandler returns the current user info as JSON
func GetCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}
