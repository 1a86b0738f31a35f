package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is one front-end run recorded in the journal.
type Session struct {
	SessionID  string
	Frontend   string
	StartedAt  time.Time
	EndedAt    *time.Time
	AppVersion *string
	MoveCount  int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session and returns its ID.
func (r *SessionRepository) Create(frontend, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, frontend, started_at, app_version)
		VALUES (?, ?, ?, ?)
	`, id, frontend, startedAt.Format(timeLayout), appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE session_id = ?
	`, endedAt.Format(timeLayout), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT s.session_id, s.frontend, s.started_at, s.ended_at, s.app_version,
		       (SELECT COUNT(*) FROM moves m WHERE m.session_id = s.session_id)
		FROM sessions s
		WHERE s.session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT s.session_id, s.frontend, s.started_at, s.ended_at, s.app_version,
		       (SELECT COUNT(*) FROM moves m WHERE m.session_id = s.session_id)
		FROM sessions s
		ORDER BY s.started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(&s.SessionID, &s.Frontend, &startedAtStr, &endedAtStr, &s.AppVersion, &s.MoveCount)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(timeLayout, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}

	if endedAtStr.Valid {
		t, err := time.Parse(timeLayout, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &t
	}

	return &s, nil
}
