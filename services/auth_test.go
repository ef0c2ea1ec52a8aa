package services

import (
	"testing"
	"time"

	"duartecontrol/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}

func TestSessionLifecycle(t *testing.T) {
	db := setupAuthTestDB(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "x", Role: models.RoleAdmin, IsActive: true}
	assert.NoError(t, db.Create(&user).Error)

	session, err := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.Len(t, session.Token, SessionTokenLength*2)

	t.Run("validate loads the user", func(t *testing.T) {
		validated, err := ValidateSession(db, session.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, validated.User.ID)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		_, err := ValidateSession(db, "nope")
		assert.Error(t, err)
	})

	t.Run("expired session is deleted on validation", func(t *testing.T) {
		expired, err := CreateSession(db, user.ID, "", "")
		assert.NoError(t, err)
		assert.NoError(t, db.Model(expired).Update("expires_at", time.Now().Add(-time.Hour)).Error)

		_, err = ValidateSession(db, expired.Token)
		assert.Error(t, err)

		var count int64
		db.Model(&models.Session{}).Where("token = ?", expired.Token).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("delete on logout", func(t *testing.T) {
		assert.NoError(t, DeleteSession(db, session.Token))
		_, err := ValidateSession(db, session.Token)
		assert.Error(t, err)
	})
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupAuthTestDB(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "x", IsActive: true}
	assert.NoError(t, db.Create(&user).Error)

	live, err := CreateSession(db, user.ID, "", "")
	assert.NoError(t, err)
	stale, err := CreateSession(db, user.ID, "", "")
	assert.NoError(t, err)
	assert.NoError(t, db.Model(stale).Update("expires_at", time.Now().Add(-time.Minute)).Error)

	assert.NoError(t, CleanupExpiredSessions(db))

	var count int64
	db.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = ValidateSession(db, live.Token)
	assert.NoError(t, err)
}
