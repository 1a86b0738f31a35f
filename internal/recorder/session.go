// Package recorder writes engine activity to the move journal.
package recorder

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records one front-end run into the journal.
type Session struct {
	logger *slog.Logger

	mu        sync.Mutex
	state     SessionState
	sessionID string
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
}

// NewSession creates a session recorder on db.
func NewSession(db *storage.DB, logger *slog.Logger) *Session {
	return &Session{
		logger:      logger,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// Start opens a new journal session.
func (s *Session) Start(frontend, appVersion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return fmt.Errorf("session already recording: %s", s.sessionID)
	}

	id, err := s.sessionRepo.Create(frontend, appVersion)
	if err != nil {
		return err
	}

	s.sessionID = id
	s.moveIndex = 0
	s.state = StateRecording
	s.logger.Debug("journal session started", "session", id, "frontend", frontend)
	return nil
}

// Observe appends one engine event. Register it with Engine.OnEvent.
// Write failures are logged; the cube keeps working without the journal.
func (s *Session) Observe(ev rubikscube.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}

	token, outcome := ev.Token, rubikscube.Applied.String()
	switch ev.Kind {
	case rubikscube.EventMove:
		outcome = ev.Outcome.String()
	case rubikscube.EventShuffle:
		token = string(ev.Mode)
	case rubikscube.EventReset:
		token = "reset"
	}

	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, ev.Time, string(ev.Kind), token, outcome); err != nil {
		s.logger.Error("journal write failed", "session", s.sessionID, "error", err)
		return
	}
	s.moveIndex++
}

// End closes the session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return err
	}

	s.state = StateEnded
	s.logger.Debug("journal session ended", "session", s.sessionID, "entries", s.moveIndex)
	return nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}
