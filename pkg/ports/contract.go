package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtavil/salespipe/pkg/domain"
)

// RunSessionBackendContract runs a suite of tests to verify that a
// SessionBackend implementation adheres to the interface contract.
func RunSessionBackendContract(t *testing.T, backend SessionBackend) {
	ctx := context.Background()
	id := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sess := domain.NewSession(id)
		sess.State["research"] = map[string]any{"company_name": "Acme Corp"}
		sess.State["count"] = 42

		err := backend.Save(ctx, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := backend.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, id, loaded.ID)
		// JSON-backed stores may decode numbers as float64; just check presence.
		assert.NotNil(t, loaded.State["count"])
		research, ok := loaded.State["research"].(map[string]any)
		require.True(t, ok, "nested state map should survive the roundtrip")
		assert.Equal(t, "Acme Corp", research["company_name"])
	})

	t.Run("Load isolation", func(t *testing.T) {
		loaded, err := backend.Load(ctx, id)
		require.NoError(t, err)

		// Mutating the returned session must not leak into the store.
		loaded.State["count"] = 99
		again, err := backend.Load(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, 99, again.State["count"])
	})

	t.Run("Load non-existent", func(t *testing.T) {
		_, err := backend.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := backend.Save(ctx, domain.NewSession(id))
		require.NoError(t, err)

		err = backend.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = backend.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, backend.Save(ctx, domain.NewSession(id1)))
		require.NoError(t, backend.Save(ctx, domain.NewSession(id2)))

		defer func() {
			_ = backend.Delete(ctx, id1)
			_ = backend.Delete(ctx, id2)
		}()

		sessions, err := backend.List(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(sessions))
		for _, s := range sessions {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
