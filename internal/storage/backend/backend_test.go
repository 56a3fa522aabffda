package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/storage/memory"
	"github.com/mmynk/homebills/internal/storage/sqlite"
)

func TestOpen(t *testing.T) {
	store, err := Open(Memory)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)

	store, err = Open("")
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)

	store, err = Open(SQLite)
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &sqlite.SQLiteStore{}, store)

	id, err := store.AddUser(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open("postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown storage backend "postgres"`)
}
