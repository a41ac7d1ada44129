// Package duckdb persists parsed sessions so PID responses can be compared
// across drives.
package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Response lines are stored joined by this separator; lines never contain it.
const lineSeparator = "\n"

// Store wraps a DuckDB connection. An empty path opens an in-memory database.
type Store struct {
	db *sql.DB
}

var _ ports.SessionArchive = (*Store)(nil)

// Open connects to the DuckDB file at dbPath and creates the archive tables.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", dbPath, err)
	}

	store := &Store{db: db}
	if err := store.initSchema(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, archiveSchema); err != nil {
		return fmt.Errorf("init archive schema: %w", err)
	}
	return nil
}

// SaveSession writes the session row, its commands and its responses in a
// single transaction.
func (s *Store) SaveSession(ctx context.Context, session domain.ArchivedSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (session_id, source, protocol, ingested_at)
		VALUES (?, ?, ?, ?)
	`, string(session.ID), session.Source, nullStr(session.Protocol), session.IngestedAt.UTC()); err != nil {
		return fmt.Errorf("insert session %s: %w", session.ID, err)
	}

	if err := insertCommands(ctx, tx, session); err != nil {
		return err
	}
	if err := insertResponses(ctx, tx, session); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session %s: %w", session.ID, err)
	}
	return nil
}

func insertCommands(ctx context.Context, tx *sql.Tx, session domain.ArchivedSession) error {
	if len(session.Commands) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO commands (session_id, position, name, response)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare commands: %w", err)
	}
	defer stmt.Close()

	for i, command := range session.Commands {
		if _, err := stmt.ExecContext(ctx,
			string(session.ID), i, command.Name, nullStr(joinLines(command.Response)),
		); err != nil {
			return fmt.Errorf("insert command %s: %w", command.Name, err)
		}
	}
	return nil
}

func insertResponses(ctx context.Context, tx *sql.Tx, session domain.ArchivedSession) error {
	if len(session.Responses) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO responses (session_id, position, request, response)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare responses: %w", err)
	}
	defer stmt.Close()

	for i, record := range session.Responses {
		if _, err := stmt.ExecContext(ctx,
			string(session.ID), i, record.Request, joinLines(record.Response),
		); err != nil {
			return fmt.Errorf("insert response %s: %w", record.Request, err)
		}
	}
	return nil
}

// History returns archived responses to request, newest session first.
// A limit of zero or less returns every match.
func (s *Store) History(ctx context.Context, request string, limit int) ([]domain.ArchivedResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := `
		SELECT s.session_id, s.source, s.protocol, r.request, r.response, s.ingested_at
		FROM responses r
		JOIN sessions s ON s.session_id = r.session_id
		WHERE upper(r.request) = upper(?)
		ORDER BY s.ingested_at DESC, r.position DESC`
	params := []interface{}{request}
	if limit > 0 {
		query += ` LIMIT ?`
		params = append(params, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query history %s: %w", request, err)
	}
	defer rows.Close()

	var out []domain.ArchivedResponse
	for rows.Next() {
		var (
			r        domain.ArchivedResponse
			id       string
			protocol sql.NullString
			response string
			at       time.Time
		)
		if err := rows.Scan(&id, &r.Source, &protocol, &r.Request, &response, &at); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		r.SessionID = domain.SessionID(id)
		r.Protocol = protocol.String
		r.Response = splitLines(response)
		r.IngestedAt = at.UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// Sessions returns the number of archived sessions.
func (s *Store) Sessions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

func splitLines(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, lineSeparator)
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
