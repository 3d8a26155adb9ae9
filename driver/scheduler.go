package driver

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/tos-kamiya/trios/game"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
	Intents         []IntentStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// IntentStats counts how often an intent reached the engine and whether it
// changed anything.
type IntentStats struct {
	Intent  game.Intent
	Applied uint64
	Ignored uint64
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives one engine: it runs the registered systems each frame and
// applies the intents they buffer.
type Scheduler struct {
	engine      *game.Engine
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64

	applied *intmap.Map[game.Intent, uint64]
	ignored *intmap.Map[game.Intent, uint64]
}

// NewScheduler creates a new scheduler for the given engine.
func NewScheduler(engine *game.Engine) *Scheduler {
	return &Scheduler{
		engine:  engine,
		systems: make([]System, 0),
		applied: intmap.New[game.Intent, uint64](len(game.Intents)),
		ignored: intmap.New[game.Intent, uint64](len(game.Intents)),
	}
}

// Engine returns the engine the scheduler drives.
func (s *Scheduler) Engine() *game.Engine {
	return s.engine
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time, applies
// the buffered intents and returns the resulting snapshot.
func (s *Scheduler) Once(dt time.Duration) game.Snapshot {
	frame := newFrame(dt, s.engine.Snapshot())

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.engine, s.record)
	s.frames++
	return s.engine.Snapshot()
}

func (s *Scheduler) record(in game.Intent, applied bool) {
	m := s.ignored
	if applied {
		m = s.applied
	}
	n, _ := m.Get(in)
	m.Put(in, n+1)
}

// Run executes frames at the given interval until the context is cancelled or
// the engine reports a quit request.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			if snap := s.Once(dt); snap.Quit {
				return
			}
		}
	}
}

// ResetCounters clears the intent counters, for example on a new game.
func (s *Scheduler) ResetCounters() {
	s.applied.Clear()
	s.ignored.Clear()
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
		Intents:     make([]IntentStats, 0, len(game.Intents)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}
	stats.TotalExecutions = totalExecs

	for _, in := range game.Intents {
		applied, _ := s.applied.Get(in)
		ignored, _ := s.ignored.Get(in)
		if applied == 0 && ignored == 0 {
			continue
		}
		stats.Intents = append(stats.Intents, IntentStats{Intent: in, Applied: applied, Ignored: ignored})
	}

	return stats
}
