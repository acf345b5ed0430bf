package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/noticedesk/noticedesk.uk/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
	"github.com/noticedesk/noticedesk.uk/internal/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web conversion state.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a web conversion-state SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCounter loads a counter ratchet record by key.
func (s *Store) GetCounter(ctx context.Context, key string) (webstorage.CounterRecord, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.CounterRecord{}, false, fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return webstorage.CounterRecord{}, false, fmt.Errorf("counter key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT counter_key, date_key, count, variance, updated_at
		 FROM counter_states
		 WHERE counter_key = ?`,
		key,
	)

	var record webstorage.CounterRecord
	var updatedAt int64
	if err := row.Scan(&record.Key, &record.DateKey, &record.Count, &record.Variance, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return webstorage.CounterRecord{}, false, nil
		}
		return webstorage.CounterRecord{}, false, fmt.Errorf("get counter: %w", err)
	}
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, true, nil
}

// PutCounter upserts a counter ratchet record by key.
func (s *Store) PutCounter(ctx context.Context, record webstorage.CounterRecord) error {
	if s == nil || s.sqlDB == nil {
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

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO counter_states (counter_key, date_key, count, variance, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(counter_key) DO UPDATE SET
		   date_key = excluded.date_key,
		   count = excluded.count,
		   variance = excluded.variance,
		   updated_at = excluded.updated_at`,
		record.Key,
		record.DateKey,
		record.Count,
		record.Variance,
		timeToUnixMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put counter: %w", err)
	}
	return nil
}

// UpsertLead inserts a deadline-alert lead, updating the jurisdiction when the
// email already exists. The original id and created_at survive resubmission.
func (s *Store) UpsertLead(ctx context.Context, lead webstorage.Lead) error {
	if s == nil || s.sqlDB == nil {
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
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO leads (id, email, jurisdiction, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
		   jurisdiction = excluded.jurisdiction`,
		lead.ID,
		lead.Email,
		strings.TrimSpace(lead.Jurisdiction),
		timeToUnixMillis(lead.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert lead: %w", err)
	}
	return nil
}

// GetLeadByEmail loads a lead by normalized email.
func (s *Store) GetLeadByEmail(ctx context.Context, email string) (webstorage.Lead, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Lead{}, false, fmt.Errorf("storage is not configured")
	}
	email = normalizeEmail(email)
	if email == "" {
		return webstorage.Lead{}, false, fmt.Errorf("lead email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, email, jurisdiction, created_at
		 FROM leads
		 WHERE email = ?`,
		email,
	)

	var lead webstorage.Lead
	var createdAt int64
	if err := row.Scan(&lead.ID, &lead.Email, &lead.Jurisdiction, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return webstorage.Lead{}, false, nil
		}
		return webstorage.Lead{}, false, fmt.Errorf("get lead: %w", err)
	}
	lead.CreatedAt = unixMillisToTime(createdAt)
	return lead, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
