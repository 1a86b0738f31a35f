package rubikscube

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// EventKind identifies what an Event describes.
type EventKind string

const (
	EventMove    EventKind = "move"
	EventShuffle EventKind = "shuffle"
	EventReset   EventKind = "reset"
)

// Event is delivered to observers after every engine operation.
type Event struct {
	Kind    EventKind
	Token   string      // Raw token for EventMove
	Move    Move        // Parsed move; meaningless when Outcome is Unrecognized
	Outcome Outcome     // For EventMove
	Mode    ShuffleMode // For EventShuffle
	Time    time.Time
}

// Engine owns a Cube and is the only thing that mutates it.
// It is not safe for concurrent use; see Owner.
type Engine struct {
	cube      *Cube
	rng       *rand.Rand
	logger    *slog.Logger
	mode      ShuffleMode
	scramble  int
	observers []func(Event)
}

// NewEngine creates an engine holding a solved cube.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		cube:     NewCube(),
		rng:      cfg.rng,
		logger:   cfg.logger,
		mode:     cfg.shuffleMode,
		scramble: cfg.scrambleLength,
	}
}

// OnEvent registers an observer. Observers run synchronously on the
// engine's goroutine and must not call back into the engine.
func (e *Engine) OnEvent(fn func(Event)) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) emit(ev Event) {
	ev.Time = time.Now()
	for _, fn := range e.observers {
		fn(ev)
	}
}

// Apply performs one move and reports the outcome.
func (e *Engine) Apply(m Move) Outcome {
	outcome := e.cube.Apply(m)
	switch outcome {
	case Applied:
		e.logger.Debug("move applied", "move", m.String())
	case TerminateRequested:
		e.logger.Info("terminate requested")
	case Unrecognized:
		e.logger.Warn("unknown command", "move", int(m))
	}
	e.emit(Event{Kind: EventMove, Token: m.String(), Move: m, Outcome: outcome})
	return outcome
}

// ApplyToken parses and performs one move. An unknown token returns
// Unrecognized together with an error wrapping ErrUnrecognizedMove.
func (e *Engine) ApplyToken(token string) (Outcome, error) {
	m, err := ParseMove(token)
	if err != nil {
		e.logger.Warn("unknown command", "token", token)
		e.emit(Event{Kind: EventMove, Token: token, Outcome: Unrecognized})
		return Unrecognized, err
	}
	return e.Apply(m), nil
}

// Shuffle paints every tile with an independently chosen random color.
// This does not model a physical scramble: color counts are not preserved.
func (e *Engine) Shuffle() {
	for _, f := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				e.cube.faces[f][row][col] = Colors[e.rng.IntN(len(Colors))]
			}
		}
	}
	e.logger.Debug("cube shuffled", "mode", ShuffleTiles)
	e.emit(Event{Kind: EventShuffle, Mode: ShuffleTiles})
}

// Scramble applies n random turns and returns them.
func (e *Engine) Scramble(n int) []Move {
	if n < 0 {
		n = 0
	}
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Turns[e.rng.IntN(len(Turns))]
		e.cube.Apply(moves[i])
	}
	e.logger.Debug("cube scrambled", "mode", ShuffleMoves, "moves", FormatMoves(moves))
	e.emit(Event{Kind: EventShuffle, Mode: ShuffleMoves})
	return moves
}

// Randomize shuffles using the configured mode. It returns the applied
// turns in ShuffleMoves mode and nil otherwise.
func (e *Engine) Randomize() []Move {
	if e.mode == ShuffleMoves {
		return e.Scramble(e.scramble)
	}
	e.Shuffle()
	return nil
}

// Reset returns the cube to the solved state.
func (e *Engine) Reset() {
	e.cube = NewCube()
	e.logger.Debug("cube reset")
	e.emit(Event{Kind: EventReset})
}

// Face returns a copy of one face.
func (e *Engine) Face(f FaceID) Grid {
	return e.cube.Face(f)
}

// Cube returns a snapshot of the whole cube.
func (e *Engine) Cube() *Cube {
	return e.cube.Clone()
}

// IsSolved returns true if the cube is solved.
func (e *Engine) IsSolved() bool {
	return e.cube.IsSolved()
}

// Mode returns the configured shuffle mode.
func (e *Engine) Mode() ShuffleMode {
	return e.mode
}
