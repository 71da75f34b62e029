package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/store"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	r := game.New(game.Medium, 42)

	require.NoError(t, st.Save(ctx, r))
	got, err := st.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Same(t, r, got)

	require.NoError(t, st.Delete(ctx, r.ID))
	_, err = st.Get(ctx, r.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Delete(ctx, "missing"))
}
