package main

import (
	"fmt"

	"github.com/tos-kamiya/trios/game"
)

// check verifies the invariants every snapshot must satisfy.
func check(s game.Snapshot, cfg game.Config) error {
	switch {
	case len(s.Cells) != cfg.Height:
		return fmt.Errorf("grid has %d rows, want %d", len(s.Cells), cfg.Height)
	case s.FallDelay < cfg.MinFallDelay:
		return fmt.Errorf("fall delay %s below minimum", s.FallDelay)
	case s.FallDelay > cfg.StageFallDelay(s.Stage):
		return fmt.Errorf("fall delay %s above stage %d start", s.FallDelay, s.Stage)
	case s.Combo < 1 || s.Combo&(s.Combo-1) != 0:
		return fmt.Errorf("combo %d is not a power of two", s.Combo)
	case s.StageLines >= s.StageThreshold:
		return fmt.Errorf("stage lines %d reached threshold %d", s.StageLines, s.StageThreshold)
	case s.Score < 0:
		return fmt.Errorf("negative score %d", s.Score)
	}

	for y, row := range s.Cells {
		if len(row) != cfg.Width {
			return fmt.Errorf("row %d has %d cells", y, len(row))
		}
		full := true
		for _, c := range row {
			full = full && c.Filled
		}
		if full {
			return fmt.Errorf("row %d is full after a lock", y)
		}
	}

	if s.State != game.GameOver {
		for _, p := range s.Current.Cells {
			if p.X < 0 || p.X >= cfg.Width || p.Y >= cfg.Height {
				return fmt.Errorf("piece cell %v outside the grid", p)
			}
			if s.At(p.X, p.Y).Filled {
				return fmt.Errorf("piece cell %v overlaps the stack", p)
			}
		}
	}
	return nil
}
