package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/storage"
	"github.com/mmynk/homebills/internal/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestRegistriesAreIndependent(t *testing.T) {
	ctx := context.Background()
	a, b := NewUserRegistry(), NewUserRegistry()

	_, err := a.AddUser(ctx, "Alice")
	require.NoError(t, err)
	_, err = a.AddUser(ctx, "Bob")
	require.NoError(t, err)

	id, err := b.AddUser(ctx, "Charlie")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}
