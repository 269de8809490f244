package repository

import (
	"context"
	"time"
)

// JournalEntry is one append-only record of a step action outcome
type JournalEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	Identity  string    `json:"identity"`
	Step      string    `json:"step"`
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
}

// JournalRepository records step action outcomes for later inspection.
// Append failures must not fail the step action that triggered them.
type JournalRepository interface {
	// Append writes one entry to the journal
	Append(ctx context.Context, entry JournalEntry) error

	// Tail returns up to n most recent entries, oldest first
	Tail(ctx context.Context, n int) ([]JournalEntry, error)
}
