package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) *redis.Client {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		container.Terminate(context.Background())
	})

	return client
}

func TestStore(t *testing.T) {
	client := setupRedisContainer(t)
	ctx := context.Background()

	t.Run("save then get", func(t *testing.T) {
		store := New(client, time.Hour)
		accountID := uuid.New()

		sessionID, err := store.Save(ctx, accountID)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, sessionID)

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, accountID, *got)
	})

	t.Run("unknown session yields nil", func(t *testing.T) {
		store := New(client, time.Hour)

		got, err := store.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete invalidates and is idempotent", func(t *testing.T) {
		store := New(client, time.Hour)
		accountID := uuid.New()

		sessionID, err := store.Save(ctx, accountID)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, sessionID))

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Second delete of the same session succeeds as well
		assert.NoError(t, store.Delete(ctx, sessionID))
	})

	t.Run("session expires after its ttl", func(t *testing.T) {
		store := New(client, time.Second)
		accountID := uuid.New()

		sessionID, err := store.Save(ctx, accountID)
		require.NoError(t, err)

		time.Sleep(1500 * time.Millisecond)

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
