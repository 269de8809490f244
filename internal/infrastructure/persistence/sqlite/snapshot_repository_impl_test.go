package sqlite

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, NewMigrator(db).Migrate())
	return db
}

func testIdentity(t *testing.T) model.Identity {
	t.Helper()
	identity, err := model.NewIdentity("0xABC0000000000000000000000000000000000001")
	require.NoError(t, err)
	return identity
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, NewMigrator(db).Migrate())
}

func TestSQLiteSnapshotRoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	identity := testIdentity(t)
	ctx := context.Background()

	saved := &record.GuildRecord{
		ID:          42,
		URLName:     "my-top-hat",
		Name:        "My Top Hat",
		Description: "tree guild",
		GuildRoleID: 7,
	}
	require.NoError(t, repo.Save(ctx, identity, model.StepKindGuild, saved))

	var loaded record.GuildRecord
	found, err := repo.Load(ctx, identity, model.StepKindGuild, &loaded)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *saved, loaded)
}

func TestSQLiteSnapshotOverwrite(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	identity := testIdentity(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, identity, model.StepKindBot, &record.BotAttestation{Added: false}))
	require.NoError(t, repo.Save(ctx, identity, model.StepKindBot, &record.BotAttestation{Added: true}))

	var loaded record.BotAttestation
	found, err := repo.Load(ctx, identity, model.StepKindBot, &loaded)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, loaded.Added)
}

func TestSQLiteSnapshotMissingRowIsAbsent(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))

	var out record.HatRecord
	found, err := repo.Load(context.Background(), testIdentity(t), model.StepKindHat, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteSnapshotMalformedPayloadIsAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	identity := testIdentity(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO snapshots (identity, kind, payload, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		identity.String(), model.StepKindHat.String(), "{corrupt")
	require.NoError(t, err)

	var out record.HatRecord
	found, err := repo.Load(ctx, identity, model.StepKindHat, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteSnapshotDeleteAll(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	identity := testIdentity(t)
	other, err := model.NewIdentity("0xDEF0000000000000000000000000000000000002")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, identity, model.StepKindHat, &record.HatRecord{Name: "a"}))
	require.NoError(t, repo.Save(ctx, identity, model.StepKindGuild, &record.GuildRecord{ID: 1}))
	require.NoError(t, repo.Save(ctx, other, model.StepKindHat, &record.HatRecord{Name: "b"}))

	require.NoError(t, repo.DeleteAll(ctx, identity))

	var out record.HatRecord
	found, err := repo.Load(ctx, identity, model.StepKindHat, &out)
	require.NoError(t, err)
	assert.False(t, found)

	// other identities are untouched
	found, err = repo.Load(ctx, other, model.StepKindHat, &out)
	require.NoError(t, err)
	assert.True(t, found)
}
