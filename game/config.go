package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate and New for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the parameters an engine is built with. They do not change
// for the life of the engine.
type Config struct {
	Width      int
	Height     int
	HiddenRows int

	// Fall delay for stage s starts at max(InitialFallDelay-(s-1)*StageSpeedup, MinFallDelay)
	// and shrinks by LockSpeedup after every lock, never below MinFallDelay.
	InitialFallDelay time.Duration
	StageSpeedup     time.Duration
	MinFallDelay     time.Duration
	LockSpeedup      time.Duration

	// Stage s is cleared after s*StageLineFactor lines.
	StageLineFactor int

	Shapes      []ShapeDef
	WeightFloor int
}

// DefaultConfig returns the standard 8x22 game.
func DefaultConfig() Config {
	return Config{
		Width:            8,
		Height:           22,
		HiddenRows:       2,
		InitialFallDelay: 800 * time.Millisecond,
		StageSpeedup:     50 * time.Millisecond,
		MinFallDelay:     100 * time.Millisecond,
		LockSpeedup:      2 * time.Millisecond,
		StageLineFactor:  10,
		Shapes:           DefaultShapes(),
		WeightFloor:      5,
	}
}

// Validate checks the numeric settings. Shapes are checked by NewCatalog.
func (c Config) Validate() error {
	switch {
	case c.Width < 3:
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	case c.Height < 3:
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	case c.HiddenRows < 0 || c.HiddenRows >= c.Height:
		return fmt.Errorf("%w: hidden rows %d out of range", ErrInvalidConfig, c.HiddenRows)
	case c.MinFallDelay <= 0:
		return fmt.Errorf("%w: minimum fall delay must be positive", ErrInvalidConfig)
	case c.InitialFallDelay < c.MinFallDelay:
		return fmt.Errorf("%w: initial fall delay %s below minimum %s", ErrInvalidConfig, c.InitialFallDelay, c.MinFallDelay)
	case c.StageSpeedup < 0 || c.LockSpeedup < 0:
		return fmt.Errorf("%w: speedups must not be negative", ErrInvalidConfig)
	case c.StageLineFactor <= 0:
		return fmt.Errorf("%w: stage line factor must be positive", ErrInvalidConfig)
	case c.WeightFloor <= 0:
		return fmt.Errorf("%w: weight floor must be positive", ErrInvalidConfig)
	}
	return nil
}

// VisibleHeight is the number of rows a renderer draws.
func (c Config) VisibleHeight() int {
	return c.Height - c.HiddenRows
}

// Spawn is the pivot position of newly promoted pieces.
func (c Config) Spawn() Point {
	return Point{X: c.Width / 2, Y: 1}
}

// StageFallDelay returns the fall delay a stage starts with.
func (c Config) StageFallDelay(stage int) time.Duration {
	return max(c.InitialFallDelay-time.Duration(stage-1)*c.StageSpeedup, c.MinFallDelay)
}

// StageThreshold returns the lines needed to clear a stage.
func (c Config) StageThreshold(stage int) int {
	return stage * c.StageLineFactor
}
