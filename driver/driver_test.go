package driver_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

// newEngine returns an engine that only deals horizontal I pieces.
func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Shapes = []game.ShapeDef{game.DefaultShapes()[0]}
	e, err := game.New(cfg, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	return e
}

type pusher struct {
	intents []game.Intent
}

func (p *pusher) Execute(frame *driver.Frame) {
	for _, in := range p.intents {
		frame.Commands.Push(in)
	}
}

func TestDeferRunsAfterIntents(t *testing.T) {
	e := newEngine(t)
	s := driver.NewScheduler(e)

	var seenX int
	s.Register(&pusher{intents: []game.Intent{game.MoveLeft, game.Rotate}})
	s.Register(&deferrer{fn: func() { seenX = e.Current().X }})

	snap := s.Once(0)
	assert.Equal(t, 3, snap.Current.Pivot.X)
	assert.Equal(t, 3, seenX, "deferred functions see the applied intents")
}

type deferrer struct {
	fn func()
}

func (d *deferrer) Execute(frame *driver.Frame) {
	frame.Commands.Defer(d.fn)
}

func TestGravity(t *testing.T) {
	setup := func(t *testing.T) (*driver.Scheduler, *driver.Queue, *driver.Gravity) {
		s := driver.NewScheduler(newEngine(t))
		q := &driver.Queue{}
		g := &driver.Gravity{}
		s.Register(q)
		s.Register(g)
		return s, q, g
	}

	t.Run("ticks once per fall delay", func(t *testing.T) {
		s, _, _ := setup(t)

		snap := s.Once(799 * time.Millisecond)
		assert.Equal(t, 1, snap.Current.Pivot.Y)

		snap = s.Once(time.Millisecond)
		assert.Equal(t, 2, snap.Current.Pivot.Y)
	})

	t.Run("never bursts", func(t *testing.T) {
		s, _, g := setup(t)

		snap := s.Once(5 * time.Second)
		assert.Equal(t, 2, snap.Current.Pivot.Y)
		assert.Equal(t, 200*time.Millisecond, g.Elapsed())
	})

	t.Run("restarts after a lock", func(t *testing.T) {
		s, q, _ := setup(t)

		q.Send(game.HardDrop)
		snap := s.Once(500 * time.Millisecond)
		require.Equal(t, uint64(1), snap.Locks)
		require.Equal(t, 798*time.Millisecond, snap.FallDelay)

		snap = s.Once(400 * time.Millisecond)
		assert.Equal(t, 1, snap.Current.Pivot.Y, "the new piece gets a full fall delay")

		snap = s.Once(398 * time.Millisecond)
		assert.Equal(t, 2, snap.Current.Pivot.Y)
	})

	t.Run("tick due in the frame of a lock", func(t *testing.T) {
		s, q, _ := setup(t)

		q.Send(game.HardDrop)
		snap := s.Once(800 * time.Millisecond)
		require.Equal(t, uint64(1), snap.Locks)
		assert.Equal(t, 2, snap.Current.Pivot.Y, "the tick follows the lock and moves the new piece")

		snap = s.Once(797 * time.Millisecond)
		assert.Equal(t, 2, snap.Current.Pivot.Y)
	})

	t.Run("stands still while paused", func(t *testing.T) {
		s, q, g := setup(t)

		q.Send(game.TogglePause)
		s.Once(0)
		snap := s.Once(3 * time.Second)
		assert.Equal(t, game.Paused, snap.State)
		assert.Equal(t, 1, snap.Current.Pivot.Y)
		assert.Equal(t, time.Duration(0), g.Elapsed())

		q.Send(game.MoveLeft)
		snap = s.Once(0)
		assert.Equal(t, game.Running, snap.State)
		assert.Equal(t, 4, snap.Current.Pivot.X)

		snap = s.Once(799 * time.Millisecond)
		assert.Equal(t, 1, snap.Current.Pivot.Y)
	})

	t.Run("reset", func(t *testing.T) {
		s, _, g := setup(t)
		s.Once(700 * time.Millisecond)
		g.Reset()
		snap := s.Once(200 * time.Millisecond)
		assert.Equal(t, 1, snap.Current.Pivot.Y)
		assert.Equal(t, 200*time.Millisecond, g.Elapsed())
	})
}

func TestSchedulerStats(t *testing.T) {
	s := driver.NewScheduler(newEngine(t))
	q := &driver.Queue{}
	s.Register(q)
	s.Register(&driver.Gravity{})

	q.Send(game.MoveLeft)
	q.Send(game.MoveLeft)
	q.Send(game.MoveLeft)
	q.Send(game.MoveLeft)
	s.Once(0)
	s.Once(0)

	stats := s.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(2), stats.Frames)
	assert.Equal(t, int64(4), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "Queue", stats.Systems[0].Name)
	assert.Equal(t, "Gravity", stats.Systems[1].Name)
	assert.Equal(t, int64(2), stats.Systems[1].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[1].MinDuration, stats.Systems[1].MaxDuration)

	require.Len(t, stats.Intents, 1)
	assert.Equal(t, driver.IntentStats{Intent: game.MoveLeft, Applied: 3, Ignored: 1}, stats.Intents[0])

	s.ResetCounters()
	assert.Empty(t, s.GetStats().Intents)
}

func TestRun(t *testing.T) {
	t.Run("context cancellation", func(t *testing.T) {
		s := driver.NewScheduler(newEngine(t))
		s.Register(&driver.Gravity{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}
		assert.Positive(t, s.GetStats().Frames)
	})

	t.Run("quit request", func(t *testing.T) {
		s := driver.NewScheduler(newEngine(t))
		q := &driver.Queue{}
		s.Register(q)
		q.Send(game.Quit)

		done := make(chan struct{})
		go func() {
			s.Run(context.Background(), time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after quit")
		}
		assert.True(t, s.Engine().QuitRequested())
	})
}
