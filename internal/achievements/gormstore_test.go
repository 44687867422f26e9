package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ProgressRecord{}))
	return db
}

func TestGormStoreSaveIsUpsert(t *testing.T) {
	db := setupStoreDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	db.Create(&models.User{ID: "user1", Username: "sara", Email: "sara@example.com"})

	require.NoError(t, store.Save(ctx, "user1", "grind", Record{Progress: 3}))

	at := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, "user1", "grind", Record{Progress: 100, Unlocked: true, UnlockedAt: &at}))

	var count int64
	db.Model(&models.ProgressRecord{}).Where("user_id = ?", "user1").Count(&count)
	assert.Equal(t, int64(1), count)

	records, err := store.Load(ctx, "user1")
	require.NoError(t, err)
	rec := records["grind"]
	assert.Equal(t, 100, rec.Progress)
	assert.True(t, rec.Unlocked)
	require.NotNil(t, rec.UnlockedAt)
	assert.True(t, rec.UnlockedAt.Equal(at))
}

func TestGormStoreLoadEmptyUser(t *testing.T) {
	db := setupStoreDB(t)
	store := NewGormStore(db)

	records, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
}
