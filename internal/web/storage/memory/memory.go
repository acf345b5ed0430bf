// Package memory provides an in-memory conversion-state store used in tests
// and when no storage path is configured.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
)

// Store keeps counter ratchets and leads in process memory.
type Store struct {
	mu       sync.Mutex
	counters map[string]webstorage.CounterRecord
	leads    map[string]webstorage.Lead
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		counters: make(map[string]webstorage.CounterRecord),
		leads:    make(map[string]webstorage.Lead),
	}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// GetCounter loads a counter ratchet record by key.
func (s *Store) GetCounter(ctx context.Context, key string) (webstorage.CounterRecord, bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return webstorage.CounterRecord{}, false, err
		}
	}
	if s == nil {
		return webstorage.CounterRecord{}, false, fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return webstorage.CounterRecord{}, false, fmt.Errorf("counter key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.counters[key]
	return record, ok, nil
}

// PutCounter upserts a counter ratchet record by key.
func (s *Store) PutCounter(ctx context.Context, record webstorage.CounterRecord) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.Key = strings.TrimSpace(record.Key)
	if record.Key == "" {
		return fmt.Errorf("counter key is required")
	}
	record.DateKey = strings.TrimSpace(record.DateKey)
	if record.DateKey == "" {
		return fmt.Errorf("counter date key is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[record.Key] = record
	return nil
}

// UpsertLead inserts a lead, updating the jurisdiction when the email exists.
func (s *Store) UpsertLead(ctx context.Context, lead webstorage.Lead) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s == nil {
		return fmt.Errorf("storage is not configured")
	}
	lead.ID = strings.TrimSpace(lead.ID)
	if lead.ID == "" {
		return fmt.Errorf("lead id is required")
	}
	lead.Email = normalizeEmail(lead.Email)
	if lead.Email == "" {
		return fmt.Errorf("lead email is required")
	}
	lead.Jurisdiction = strings.TrimSpace(lead.Jurisdiction)
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.leads[lead.Email]; ok {
		existing.Jurisdiction = lead.Jurisdiction
		s.leads[lead.Email] = existing
		return nil
	}
	s.leads[lead.Email] = lead
	return nil
}

// GetLeadByEmail loads a lead by normalized email.
func (s *Store) GetLeadByEmail(ctx context.Context, email string) (webstorage.Lead, bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return webstorage.Lead{}, false, err
		}
	}
	if s == nil {
		return webstorage.Lead{}, false, fmt.Errorf("storage is not configured")
	}
	email = normalizeEmail(email)
	if email == "" {
		return webstorage.Lead{}, false, fmt.Errorf("lead email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[email]
	return lead, ok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ webstorage.Store = (*Store)(nil)
