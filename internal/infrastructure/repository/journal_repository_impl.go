package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mizusawah/hatlink/internal/app"
	"github.com/mizusawah/hatlink/internal/domain/repository"
)

// JournalRepositoryImpl implements repository.JournalRepository as an
// append-only NDJSON file. Malformed lines are skipped on read, not fatal.
type JournalRepositoryImpl struct {
	fs   afero.Fs
	path string
}

// NewJournalRepositoryImpl creates a file-based journal at path
func NewJournalRepositoryImpl(filesystem afero.Fs, path string) *JournalRepositoryImpl {
	return &JournalRepositoryImpl{fs: filesystem, path: path}
}

// Append writes one entry as a single NDJSON line
func (r *JournalRepositoryImpl) Append(ctx context.Context, entry repository.JournalEntry) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}

	f, err := r.fs.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// Tail returns up to n most recent entries, oldest first
func (r *JournalRepositoryImpl) Tail(ctx context.Context, n int) ([]repository.JournalEntry, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []repository.JournalEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry repository.JournalEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			app.GetLogger().Warn("skipping malformed journal line: %v", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
