package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawah/hatlink/internal/domain/repository"
)

func journalEntry(step string, ok bool) repository.JournalEntry {
	return repository.JournalEntry{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Identity:  "0xabc",
		Step:      step,
		OK:        ok,
		Message:   "message for " + step,
	}
}

func TestJournalAppendAndTail(t *testing.T) {
	repo := NewJournalRepositoryImpl(afero.NewMemMapFs(), "/var/journal.ndjson")
	ctx := context.Background()

	first := journalEntry("hat.search", true)
	second := journalEntry("guild.create", false)
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	entries, err := repo.Tail(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.False(t, entries[1].OK)
}

func TestJournalTailLimitsToMostRecent(t *testing.T) {
	repo := NewJournalRepositoryImpl(afero.NewMemMapFs(), "/var/journal.ndjson")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, journalEntry("bot.attest", true)))
	}
	last := journalEntry("reward.create", true)
	require.NoError(t, repo.Append(ctx, last))

	entries, err := repo.Tail(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, last.ID, entries[1].ID)
}

func TestJournalTailMissingFile(t *testing.T) {
	repo := NewJournalRepositoryImpl(afero.NewMemMapFs(), "/var/journal.ndjson")

	entries, err := repo.Tail(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalTailSkipsMalformedLines(t *testing.T) {
	memFs := afero.NewMemMapFs()
	repo := NewJournalRepositoryImpl(memFs, "/var/journal.ndjson")
	ctx := context.Background()

	good := journalEntry("hat.search", true)
	require.NoError(t, repo.Append(ctx, good))

	f, err := memFs.OpenFile("/var/journal.ndjson", os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte("{corrupt line\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := repo.Tail(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, good.ID, entries[0].ID)
}
