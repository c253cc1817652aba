package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Bootstrap(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPlaylistDeleteCascade(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	accounts := NewAccountWriteRepository(db)
	playlistWrite := NewPlaylistWriteRepository(db, nil)
	playlistRead := NewPlaylistReadRepository(db)
	songWrite := NewSongWriteRepository(db, nil)
	songRead := NewSongReadRepository(db)

	owner, err := accounts.Save(ctx, "alice", "hash")
	require.NoError(t, err)

	playlist, err := playlistWrite.Save(ctx, owner.AccountID, "road trip")
	require.NoError(t, err)

	keeper, err := playlistWrite.Save(ctx, owner.AccountID, "keeper")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = songWrite.Save(ctx, playlist.PlaylistID, owner.AccountID, fmt.Sprintf("song %d", i), "http://example.com")
		require.NoError(t, err)
	}
	kept, err := songWrite.Save(ctx, keeper.PlaylistID, owner.AccountID, "kept song", "http://example.com")
	require.NoError(t, err)

	// Deleting the playlist removes all of its songs with it
	require.NoError(t, playlistWrite.Delete(ctx, playlist.PlaylistID))

	gone, err := playlistRead.GetByID(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	songs, err := songRead.ListByPlaylist(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.Empty(t, songs)

	// Other playlists and their songs are untouched
	remaining, err := songRead.ListByPlaylist(ctx, keeper.PlaylistID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.SongID, remaining[0].SongID)
}

func TestPlaylistDeleteCascade_RollsBackAsOneUnit(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	accounts := NewAccountWriteRepository(db)
	owner, err := accounts.Save(ctx, "bob", "hash")
	require.NoError(t, err)

	setup := NewPlaylistWriteRepository(db, nil)
	playlist, err := setup.Save(ctx, owner.AccountID, "doomed")
	require.NoError(t, err)

	songSetup := NewSongWriteRepository(db, nil)
	_, err = songSetup.Save(ctx, playlist.PlaylistID, owner.AccountID, "survivor", "http://example.com")
	require.NoError(t, err)

	tx, err := db.Beginx()
	require.NoError(t, err)

	txRepo := NewPlaylistWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	require.NoError(t, txRepo.Delete(ctx, playlist.PlaylistID))
	require.NoError(t, tx.Rollback())

	// After rollback both the playlist and its song are still there
	playlistRead := NewPlaylistReadRepository(db)
	still, err := playlistRead.GetByID(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	songRead := NewSongReadRepository(db)
	songs, err := songRead.ListByPlaylist(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
}

func TestAccountWriteRepository_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	accounts := NewAccountWriteRepository(db)

	_, err := accounts.Save(ctx, "carol", "hash1")
	require.NoError(t, err)

	dup, err := accounts.Save(ctx, "carol", "hash2")
	assert.Error(t, err)
	assert.Nil(t, dup)
}

func TestSongWriteRepository_DeleteAbsent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	songs := NewSongWriteRepository(db, nil)
	err := songs.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
