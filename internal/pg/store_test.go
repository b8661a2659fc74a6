package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Интеграционный тест: поднимает Postgres в контейнере.
// Пропускается в -short и без докера.
func TestStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("stend"),
		tcpostgres.WithUsername("stend"),
		tcpostgres.WithPassword("stend"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("cannot start postgres container: %v", err)
	}
	defer func() {
		_ = container.Terminate(ctx)
	}()

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(url)
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	require.NoError(t, store.EnsureSchema(ctx, []string{"projects", "buildTypes"}))

	t.Run("save и loadAll", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "projects", "p1", map[string]interface{}{"id": "p1", "name": "test_one"}))
		require.NoError(t, store.Save(ctx, "projects", "p2", map[string]interface{}{"id": "p2", "name": "test_two"}))

		rows, err := store.LoadAll(ctx, "projects")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "test_one", rows["p1"]["name"])
	})

	t.Run("upsert обновляет данные", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "projects", "p1", map[string]interface{}{"id": "p1", "name": "renamed"}))
		rows, err := store.LoadAll(ctx, "projects")
		require.NoError(t, err)
		assert.Equal(t, "renamed", rows["p1"]["name"])
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "projects", "p1"))
		// повторное удаление — не ошибка
		require.NoError(t, store.Remove(ctx, "projects", "p1"))

		rows, err := store.LoadAll(ctx, "projects")
		require.NoError(t, err)
		assert.NotContains(t, rows, "p1")
	})
}
