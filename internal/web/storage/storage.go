package storage

import (
	"context"
	"time"
)

// CounterRecord stores one social-proof counter's daily ratchet state.
//
// DateKey is the site-local calendar day ("2006-01-02"). A record whose
// DateKey no longer matches today is treated as absent, which releases the
// prior day's ratchet.
type CounterRecord struct {
	Key       string
	DateKey   string
	Count     int
	Variance  int
	UpdatedAt time.Time
}

// Lead stores one deadline-alert subscription.
type Lead struct {
	ID           string
	Email        string
	Jurisdiction string
	CreatedAt    time.Time
}

// Store is the persistence contract for web conversion state.
//
// Counter reads and writes happen on every badge render, so implementations
// should keep both paths cheap.
type Store interface {
	Close() error
	GetCounter(ctx context.Context, key string) (CounterRecord, bool, error)
	PutCounter(ctx context.Context, record CounterRecord) error
	UpsertLead(ctx context.Context, lead Lead) error
	GetLeadByEmail(ctx context.Context, email string) (Lead, bool, error)
}
