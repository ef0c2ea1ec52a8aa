package services

import (
	"context"
	"testing"
	"time"

	"duartecontrol/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecordStore(t *testing.T) *RecordStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	assert.NoError(t, db.AutoMigrate(&models.RecordSet{}))
	return NewRecordStore(db, 0)
}

func TestRecordStoreCases(t *testing.T) {
	store := setupRecordStore(t)
	ctx := context.Background()

	t.Run("empty collection before first write", func(t *testing.T) {
		cases, err := store.ListCases(ctx)
		assert.NoError(t, err)
		assert.Empty(t, cases)
	})

	t.Run("create prepends", func(t *testing.T) {
		_, err := store.CreateCase(ctx, models.LegalCase{ID: "c1", ProcessNumber: "100"})
		assert.NoError(t, err)
		_, err = store.CreateCase(ctx, models.LegalCase{ID: "c2", ProcessNumber: "200"})
		assert.NoError(t, err)

		cases, err := store.ListCases(ctx)
		assert.NoError(t, err)
		assert.Len(t, cases, 2)
		assert.Equal(t, "c2", cases[0].ID)
		assert.Equal(t, "c1", cases[1].ID)
	})

	t.Run("update replaces in place", func(t *testing.T) {
		_, found, err := store.UpdateCase(ctx, models.LegalCase{ID: "c1", ProcessNumber: "150"})
		assert.NoError(t, err)
		assert.True(t, found)

		cases, _ := store.ListCases(ctx)
		assert.Equal(t, "150", cases[1].ProcessNumber)
		assert.Equal(t, "c2", cases[0].ID)
	})

	t.Run("update on missing id is a silent no-op", func(t *testing.T) {
		before, _ := store.ListCases(ctx)
		_, found, err := store.UpdateCase(ctx, models.LegalCase{ID: "missing", ProcessNumber: "999"})
		assert.NoError(t, err)
		assert.False(t, found)

		after, _ := store.ListCases(ctx)
		assert.Equal(t, before, after)
	})

	t.Run("delete", func(t *testing.T) {
		_, found, err := store.DeleteCase(ctx, "c2")
		assert.NoError(t, err)
		assert.True(t, found)

		cases, _ := store.ListCases(ctx)
		assert.Len(t, cases, 1)

		_, found, err = store.DeleteCase(ctx, "c2")
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRecordStoreLawyerSeeding(t *testing.T) {
	store := setupRecordStore(t)
	ctx := context.Background()

	lawyers, err := store.ListLawyers(ctx)
	assert.NoError(t, err)
	assert.Len(t, lawyers, 2)
	assert.Equal(t, "Dra. Ana Costa", lawyers[0].Name)
	assert.Equal(t, "Dr. Roberto Santos", lawyers[1].Name)

	// Deleting both seeds must not re-trigger seeding: the row now exists.
	_, found, err := store.DeleteLawyer(ctx, "l1")
	assert.NoError(t, err)
	assert.True(t, found)
	_, found, err = store.DeleteLawyer(ctx, "l2")
	assert.NoError(t, err)
	assert.True(t, found)

	lawyers, err = store.ListLawyers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, lawyers)
}

func TestRecordStoreCorruptedSet(t *testing.T) {
	store := setupRecordStore(t)
	ctx := context.Background()

	err := store.db.Create(&models.RecordSet{Kind: models.RecordKindCases, Data: "{not json"}).Error
	assert.NoError(t, err)

	cases, err := store.ListCases(ctx)
	assert.NoError(t, err)
	assert.Empty(t, cases)

	// A corrupted set is recoverable: the next write replaces it.
	_, err = store.CreateCase(ctx, models.LegalCase{ID: "c1"})
	assert.NoError(t, err)
	cases, err = store.ListCases(ctx)
	assert.NoError(t, err)
	assert.Len(t, cases, 1)
}

func TestRecordStoreLatency(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.RecordSet{}))
	store := NewRecordStore(db, 50*time.Millisecond)

	t.Run("delay applies before the operation", func(t *testing.T) {
		start := time.Now()
		_, err := store.ListCases(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled context aborts before any write", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.CreateCase(ctx, models.LegalCase{ID: "c1"})
		assert.ErrorIs(t, err, context.Canceled)

		cases, err := store.ListCases(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, cases)
	})
}
