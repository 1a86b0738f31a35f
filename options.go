package rubikscube

import (
	"log/slog"
	"math/rand/v2"
)

// ShuffleMode selects what Randomize does.
type ShuffleMode string

const (
	// ShuffleTiles paints every tile with an independent random color.
	// The result is usually not a reachable cube.
	ShuffleTiles ShuffleMode = "tiles"
	// ShuffleMoves applies a random sequence of real turns.
	ShuffleMoves ShuffleMode = "moves"
)

// DefaultScrambleLength is the number of turns used by ShuffleMoves.
const DefaultScrambleLength = 25

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	logger         *slog.Logger
	shuffleMode    ShuffleMode
	scrambleLength int
}

func defaultConfig() *config {
	return &config{
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:         slog.New(slog.DiscardHandler),
		shuffleMode:    ShuffleTiles,
		scrambleLength: DefaultScrambleLength,
	}
}

// WithRand sets the random source used by Shuffle and Scramble.
// Pass a seeded source for reproducible results.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLogger sets the logger. Moves are logged at debug level and
// unrecognized tokens at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithShuffleMode selects what Randomize does (default ShuffleTiles).
func WithShuffleMode(mode ShuffleMode) Option {
	return func(c *config) {
		c.shuffleMode = mode
	}
}

// WithScrambleLength sets how many turns Randomize applies in ShuffleMoves mode.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}
