package config

import "time"

// Game board dimensions
const (
	DefaultWidth  = 30
	DefaultHeight = 30
)

// Difficulty settings
const (
	DefaultScorePerLevel     = 5
	DefaultMaxLevel          = 10
	DefaultBaseInterval      = 200 * time.Millisecond
	DefaultMinInterval       = 60 * time.Millisecond
	DefaultIntervalDecrement = 15 * time.Millisecond
)

// Food placement settings
const (
	DefaultMaxPlacementAttempts = 128
)

// Emoji characters for rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
)

// Game holds the tunable rules for a single game. The zero value is not
// usable directly; call Normalized (or start from Default) before handing
// it to an engine.
type Game struct {
	// ScorePerLevel is how many points advance the difficulty one level.
	ScorePerLevel int
	// MaxLevel caps the difficulty level regardless of score.
	MaxLevel int
	// BaseInterval is the tick period at level 1.
	BaseInterval time.Duration
	// MinInterval is the fastest tick period the curve may reach.
	MinInterval time.Duration
	// IntervalDecrement is subtracted from the period per level gained.
	IntervalDecrement time.Duration
	// MaxPlacementAttempts bounds random food placement before the
	// placer falls back to scanning for a free cell.
	MaxPlacementAttempts int
	// Seed drives food placement. Zero means seed from the clock.
	Seed int64
}

// Default returns the standard rule set.
func Default() Game {
	return Game{
		ScorePerLevel:        DefaultScorePerLevel,
		MaxLevel:             DefaultMaxLevel,
		BaseInterval:         DefaultBaseInterval,
		MinInterval:          DefaultMinInterval,
		IntervalDecrement:    DefaultIntervalDecrement,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// Normalized returns a copy with zero or nonsensical fields replaced by
// defaults, so a partially filled Game still produces a playable engine.
func (g Game) Normalized() Game {
	if g.ScorePerLevel < 1 {
		g.ScorePerLevel = DefaultScorePerLevel
	}
	if g.MaxLevel < 1 {
		g.MaxLevel = DefaultMaxLevel
	}
	if g.BaseInterval <= 0 {
		g.BaseInterval = DefaultBaseInterval
	}
	if g.MinInterval <= 0 {
		g.MinInterval = DefaultMinInterval
	}
	if g.MinInterval > g.BaseInterval {
		g.MinInterval = g.BaseInterval
	}
	if g.IntervalDecrement < 0 {
		g.IntervalDecrement = DefaultIntervalDecrement
	}
	if g.MaxPlacementAttempts < 1 {
		g.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}
	return g
}
