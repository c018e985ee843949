package game

import (
	"time"

	"github.com/benjialonso/snake/pkg/config"
)

// DifficultyCurve maps a score to a level and a level to a tick period.
// Both mappings are pure, so hosts and tests can evaluate them without an
// engine.
type DifficultyCurve struct {
	scorePerLevel int
	maxLevel      int
	baseInterval  time.Duration
	minInterval   time.Duration
	decrement     time.Duration
}

// NewDifficultyCurve builds a curve from an already normalized config.
func NewDifficultyCurve(cfg config.Game) DifficultyCurve {
	return DifficultyCurve{
		scorePerLevel: cfg.ScorePerLevel,
		maxLevel:      cfg.MaxLevel,
		baseInterval:  cfg.BaseInterval,
		minInterval:   cfg.MinInterval,
		decrement:     cfg.IntervalDecrement,
	}
}

// LevelFor returns the level for a score: one level per ScorePerLevel
// points, starting at 1 and capped at MaxLevel.
func (c DifficultyCurve) LevelFor(score int) int {
	if score < 0 {
		score = 0
	}
	level := score/c.scorePerLevel + 1
	if level > c.maxLevel {
		return c.maxLevel
	}
	return level
}

// IntervalFor returns the tick period for a level, clamped so it never
// drops below the minimum interval.
func (c DifficultyCurve) IntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := c.baseInterval - time.Duration(level-1)*c.decrement
	if interval < c.minInterval {
		return c.minInterval
	}
	return interval
}
