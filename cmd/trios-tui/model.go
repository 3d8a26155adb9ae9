package main

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/export"
	"github.com/tos-kamiya/trios/game"
)

const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

var keymap = map[string]game.Intent{
	"left":   game.MoveLeft,
	"h":      game.MoveLeft,
	"right":  game.MoveRight,
	"l":      game.MoveRight,
	"down":   game.SoftDrop,
	"j":      game.SoftDrop,
	"up":     game.Rotate,
	"k":      game.Rotate,
	" ":      game.HardDrop,
	"p":      game.TogglePause,
	"q":      game.Quit,
	"esc":    game.Quit,
	"ctrl+c": game.Quit,
}

// Model is the bubbletea model. Key presses are queued and applied on the
// next frame together with gravity.
type Model struct {
	scheduler *driver.Scheduler
	queue     *driver.Queue
	gravity   *driver.Gravity
	clip      func(string) error

	snap   game.Snapshot
	last   time.Time
	ghost  bool
	status string
	width  int
	height int
}

// NewModel wires the queue and gravity into a new scheduler. Extra systems
// run after them.
func NewModel(engine *game.Engine, ghost bool, extra ...driver.System) Model {
	m := Model{
		scheduler: driver.NewScheduler(engine),
		queue:     &driver.Queue{},
		gravity:   &driver.Gravity{},
		clip:      clipboard.WriteAll,
		snap:      engine.Snapshot(),
		ghost:     ghost,
	}
	m.scheduler.Register(m.queue)
	m.scheduler.Register(m.gravity)
	for _, s := range extra {
		m.scheduler.Register(s)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return frameCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String()), nil
	case frameMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now

		m.snap = m.scheduler.Once(dt)
		if m.snap.Quit {
			return m, tea.Quit
		}
		return m, frameCmd()
	}
	return m, nil
}

func (m Model) handleKey(key string) Model {
	switch {
	case key == "c":
		if err := m.clip(export.Text(m.snap)); err != nil {
			log.Printf("Copy failed: %v", err)
			m.status = "Copy failed"
		} else {
			m.status = "Board copied"
		}
		return m
	case key == "g":
		m.ghost = !m.ghost
		return m
	case key == "r" && m.snap.State == game.GameOver:
		log.Printf("Restarting after final score %d", m.snap.FinalScore)
		e := m.scheduler.Engine()
		e.Reset()
		m.gravity.Reset()
		m.scheduler.ResetCounters()
		m.snap = e.Snapshot()
		m.status = ""
		return m
	}

	if in, ok := keymap[key]; ok {
		m.queue.Send(in)
	} else if m.snap.State == game.Paused || m.snap.State == game.StageClear {
		m.queue.Send(game.TogglePause)
	}
	return m
}
