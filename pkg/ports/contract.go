package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTableStoreContract runs a suite of tests to verify that a TableStore implementation
// adheres to the defined interface contract.
func RunTableStoreContract(t *testing.T, store TableStore) {
	ctx := context.Background()
	name := "contract-table-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		tokens := map[domain.Token]any{
			"header-tag":   []any{"span", "header-style"},
			"header-style": "color: #444",
			"max-items":    5,
		}

		err := store.Save(ctx, name, tokens)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "color: #444", loaded["header-style"])
		assert.Equal(t, []any{"span", "header-style"}, loaded["header-tag"])
		// Numbers may come back as float64 after JSON persistence.
		assert.EqualValues(t, 5, loaded["max-items"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrTableNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, map[domain.Token]any{"a": "1", "b": "2"}))
		require.NoError(t, store.Save(ctx, name, map[domain.Token]any{"a": "3"}))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, map[domain.Token]any{"a": "3"}, loaded)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, map[domain.Token]any{"a": "1"}))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrTableNotFound, "Load after Delete should return ErrTableNotFound")
	})

	t.Run("List", func(t *testing.T) {
		n1 := name + "-1"
		n2 := name + "-2"
		_ = store.Save(ctx, n1, map[domain.Token]any{"a": "1"})
		_ = store.Save(ctx, n2, map[domain.Token]any{"a": "2"})

		defer func() {
			_ = store.Delete(ctx, n1)
			_ = store.Delete(ctx, n2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, n1)
		assert.Contains(t, names, n2)
	})

	t.Run("Names Do Not Collide With Internal Keys", func(t *testing.T) {
		regular := name + "-regular"
		require.NoError(t, store.Save(ctx, regular, map[domain.Token]any{"a": "1"}))
		require.NoError(t, store.Save(ctx, "index", map[domain.Token]any{"b": "2"}))

		defer func() {
			_ = store.Delete(ctx, regular)
			_ = store.Delete(ctx, "index")
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, regular)
		assert.Contains(t, names, "index")

		loaded, err := store.Load(ctx, "index")
		require.NoError(t, err)
		assert.Equal(t, map[domain.Token]any{"b": "2"}, loaded)
	})
}
