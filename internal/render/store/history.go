package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
)

// Record is one stored conversion
type Record struct {
	ID        string        `json:"id" yaml:"id"`
	Input     string        `json:"input" yaml:"input"`
	MathML    string        `json:"mathml" yaml:"mathml"`
	Display   string        `json:"display" yaml:"display"`
	Warnings  int           `json:"warnings" yaml:"warnings"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration"`
	Source    string        `json:"source,omitempty" yaml:"source,omitempty"` // cli, http, ws, grpc
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// Query filters history listings
type Query struct {
	Contains string    // substring of the input
	Since    time.Time // zero for no lower bound
	Limit    int       // 0 means DefaultLimit
	Offset   int
}

// DefaultLimit caps listings without an explicit limit
const DefaultLimit = 50

// Stats summarizes the stored history
type Stats struct {
	Records       int           `json:"records" yaml:"records"`
	WithWarnings  int           `json:"with_warnings" yaml:"with_warnings"`
	TotalWarnings int           `json:"total_warnings" yaml:"total_warnings"`
	AvgDuration   time.Duration `json:"avg_duration_ns" yaml:"avg_duration"`
	Oldest        time.Time     `json:"oldest,omitempty" yaml:"oldest,omitempty"`
	Newest        time.Time     `json:"newest,omitempty" yaml:"newest,omitempty"`
}

// HistoryStore defines render history persistence
type HistoryStore interface {
	Record(ctx context.Context, rec *Record) error
	Query(ctx context.Context, q Query) ([]*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Prune(ctx context.Context, olderThan time.Time, maxRecords int) (int64, error)
	Stats(ctx context.Context) (Stats, error)
	PingContext(ctx context.Context) error
	Close() error
}

// SQLiteHistoryStore implements HistoryStore using SQLite
type SQLiteHistoryStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/history.db"}
}

// NewSQLiteHistoryStore opens (and creates) the history database
func NewSQLiteHistoryStore(cfg Config) (*SQLiteHistoryStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, storageError(err, "open", "failed to create directory")
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, storageError(err, "open", "failed to open database")
	}

	s := &SQLiteHistoryStore{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "open", "failed to initialize schema")
	}
	return s, nil
}

func (s *SQLiteHistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS renders (
		id TEXT PRIMARY KEY,
		input TEXT NOT NULL,
		mathml TEXT NOT NULL,
		display TEXT NOT NULL DEFAULT 'inline',
		warnings INTEGER NOT NULL DEFAULT 0,
		duration_ns INTEGER NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores rec, assigning an ID and a timestamp when missing
func (s *SQLiteHistoryStore) Record(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	if rec.Display == "" {
		rec.Display = "inline"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO renders (id, input, mathml, display, warnings, duration_ns, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Input, rec.MathML, rec.Display, rec.Warnings, int64(rec.Duration), rec.Source, rec.CreatedAt.UnixNano())
	if err != nil {
		return storageError(err, "record", "failed to record render")
	}
	return nil
}

// Query lists records newest first
func (s *SQLiteHistoryStore) Query(ctx context.Context, q Query) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var where []string
	var args []interface{}
	if q.Contains != "" {
		where = append(where, "instr(input, ?) > 0")
		args = append(args, q.Contains)
	}
	if !q.Since.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, q.Since.UnixNano())
	}

	query := "SELECT id, input, mathml, display, warnings, duration_ns, source, created_at FROM renders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?"

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit, max(q.Offset, 0))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "query", "failed to query history")
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, storageError(err, "query", "failed to scan record")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "query", "failed to read history")
	}
	return records, nil
}

// Get returns one record; a missing ID is a NotFound error
func (s *SQLiteHistoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, input, mathml, display, warnings, duration_ns, source, created_at
		FROM renders WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mmerror.Newf("render %s not found", id).
				WithCode(mmerror.CodeNotFound).
				WithOperation("history.get").
				WithDetail("id", id)
		}
		return nil, storageError(err, "get", "failed to get record")
	}
	return rec, nil
}

// Prune deletes records created before olderThan and, when maxRecords is
// positive, everything beyond the newest maxRecords
func (s *SQLiteHistoryStore) Prune(ctx context.Context, olderThan time.Time, maxRecords int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	if !olderThan.IsZero() {
		res, err := s.db.ExecContext(ctx, "DELETE FROM renders WHERE created_at < ?", olderThan.UnixNano())
		if err != nil {
			return 0, storageError(err, "prune", "failed to prune by age")
		}
		n, _ := res.RowsAffected()
		total += n
	}

	if maxRecords > 0 {
		res, err := s.db.ExecContext(ctx, `
			DELETE FROM renders WHERE id NOT IN (
				SELECT id FROM renders ORDER BY created_at DESC, rowid DESC LIMIT ?
			)
		`, maxRecords)
		if err != nil {
			return total, storageError(err, "prune", "failed to prune by count")
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// Stats returns aggregate numbers over all records
func (s *SQLiteHistoryStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		st                  Stats
		withWarnings, total sql.NullInt64
		avg                 sql.NullFloat64
		oldest, newest      sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			SUM(CASE WHEN warnings > 0 THEN 1 ELSE 0 END),
			SUM(warnings),
			AVG(duration_ns),
			MIN(created_at),
			MAX(created_at)
		FROM renders
	`).Scan(&st.Records, &withWarnings, &total, &avg, &oldest, &newest)
	if err != nil {
		return Stats{}, storageError(err, "stats", "failed to compute statistics")
	}

	st.WithWarnings = int(withWarnings.Int64)
	st.TotalWarnings = int(total.Int64)
	st.AvgDuration = time.Duration(avg.Float64)
	if oldest.Valid {
		st.Oldest = time.Unix(0, oldest.Int64)
	}
	if newest.Valid {
		st.Newest = time.Unix(0, newest.Int64)
	}
	return st, nil
}

// PingContext checks the database connection
func (s *SQLiteHistoryStore) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec      Record
		duration int64
		created  int64
	)
	if err := row.Scan(&rec.ID, &rec.Input, &rec.MathML, &rec.Display, &rec.Warnings, &duration, &rec.Source, &created); err != nil {
		return nil, err
	}
	rec.Duration = time.Duration(duration)
	rec.CreatedAt = time.Unix(0, created)
	return &rec, nil
}

func storageError(err error, op, message string) *mmerror.Error {
	return mmerror.Wrap(err, message).
		WithCode(mmerror.CodeStorage).
		WithOperation("history." + op)
}
