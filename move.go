package rubikscube

import (
	"fmt"
	"strings"
)

// Move is one token of the move vocabulary.
type Move uint8

const (
	UPlus  Move = iota // Up layer clockwise
	UMinus             // Up layer counterclockwise
	BPlus              // Bottom layer clockwise
	BMinus             // Bottom layer counterclockwise
	RPlus              // Right layer clockwise
	RMinus             // Right layer counterclockwise
	LPlus              // Left layer clockwise
	LMinus             // Left layer counterclockwise
	FPlus              // Front layer clockwise
	FMinus             // Front layer counterclockwise
	Exit               // End the session

	moveCount
)

// Turns lists the ten layer moves, excluding Exit.
var Turns = []Move{UPlus, UMinus, BPlus, BMinus, RPlus, RMinus, LPlus, LMinus, FPlus, FMinus}

var moveTokens = [moveCount]string{
	UPlus:  "U+",
	UMinus: "U-",
	BPlus:  "B+",
	BMinus: "B-",
	RPlus:  "R+",
	RMinus: "R-",
	LPlus:  "L+",
	LMinus: "L-",
	FPlus:  "F+",
	FMinus: "F-",
	Exit:   "EX",
}

// String returns the move token, e.g. "U+".
func (m Move) String() string {
	if m >= moveCount {
		return fmt.Sprintf("Move(%d)", m)
	}
	return moveTokens[m]
}

// Face returns the face turned by the move. ok is false for Exit.
func (m Move) Face() (face FaceID, ok bool) {
	switch m {
	case UPlus, UMinus:
		return Up, true
	case BPlus, BMinus:
		return Bottom, true
	case RPlus, RMinus:
		return Right, true
	case LPlus, LMinus:
		return Left, true
	case FPlus, FMinus:
		return Front, true
	default:
		return 0, false
	}
}

// Clockwise reports whether the move is a "+" turn.
func (m Move) Clockwise() bool {
	switch m {
	case UPlus, BPlus, RPlus, LPlus, FPlus:
		return true
	default:
		return false
	}
}

// Inverse returns the move that undoes m.
// U+ becomes U-, U- becomes U+, Exit stays Exit.
func (m Move) Inverse() Move {
	switch m {
	case UPlus:
		return UMinus
	case UMinus:
		return UPlus
	case BPlus:
		return BMinus
	case BMinus:
		return BPlus
	case RPlus:
		return RMinus
	case RMinus:
		return RPlus
	case LPlus:
		return LMinus
	case LMinus:
		return LPlus
	case FPlus:
		return FMinus
	case FMinus:
		return FPlus
	default:
		return m
	}
}

// ParseMove parses a case-sensitive move token such as "R+" or "EX".
// Returns an error wrapping ErrUnrecognizedMove for anything else.
func ParseMove(s string) (Move, error) {
	for m, tok := range moveTokens {
		if tok == s {
			return Move(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedMove, s)
}

// ParseMoves parses a space-separated sequence of tokens.
// Unlike the per-token parser it stops at the first bad token and returns it
// in the error, so callers never act on a partly valid sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats moves as a space-separated token string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}

// Outcome reports what happened to a move request.
type Outcome int

const (
	Applied            Outcome = iota // The cube was turned
	Unrecognized                      // The token was not a move; nothing changed
	TerminateRequested                // EX was sent; nothing changed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Unrecognized:
		return "unrecognized"
	case TerminateRequested:
		return "terminate_requested"
	default:
		return "unknown"
	}
}

// Apply turns the cube by m. Exit and out-of-range values leave it untouched.
func (c *Cube) Apply(m Move) Outcome {
	switch m {
	case UPlus, UMinus, BPlus, BMinus, RPlus, RMinus, LPlus, LMinus, FPlus, FMinus:
		face, _ := m.Face()
		c.turn(face, m.Clockwise())
		return Applied
	case Exit:
		return TerminateRequested
	default:
		return Unrecognized
	}
}

// ApplyMoves applies a sequence of moves, stopping early at Exit.
// It returns the number of moves applied.
func (c *Cube) ApplyMoves(moves []Move) int {
	for i, m := range moves {
		if c.Apply(m) != Applied {
			return i
		}
	}
	return len(moves)
}
