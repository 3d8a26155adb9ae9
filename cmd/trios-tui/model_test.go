package main

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tos-kamiya/trios/game"
)

func newModel(t *testing.T) Model {
	t.Helper()
	engine, err := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	return NewModel(engine, false)
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// step sends a frame one frame interval after the previous one.
func step(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	at := epoch
	if !m.last.IsZero() {
		at = m.last.Add(frameInterval)
	}
	next, cmd := m.Update(frameMsg(at))
	return next.(Model), cmd
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeysAreAppliedOnTheNextFrame(t *testing.T) {
	m := newModel(t)
	x := m.snap.Current.Pivot.X

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, x, m.snap.Current.Pivot.X)

	m, cmd := step(t, m)
	assert.Equal(t, x-1, m.snap.Current.Pivot.X)
	assert.NotNil(t, cmd)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m, _ = step(t, m)
	assert.Equal(t, x, m.snap.Current.Pivot.X)
}

func TestAnyKeyResumes(t *testing.T) {
	m := newModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m, _ = step(t, m)
	require.Equal(t, game.Paused, m.snap.State)
	assert.Contains(t, m.View(), "Paused")

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = step(t, m)
	assert.Equal(t, game.Running, m.snap.State)
}

func TestUnmappedKeysAreIgnoredWhileRunning(t *testing.T) {
	m := newModel(t)
	before := m.snap

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = step(t, m)
	assert.Equal(t, game.Running, m.snap.State)
	assert.Equal(t, before.Current.Pivot, m.snap.Current.Pivot)
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := step(t, m)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCopyBoard(t *testing.T) {
	m := newModel(t)
	var copied string
	m.clip = func(s string) error {
		copied = s
		return nil
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Contains(t, copied, "Score: 0")
	assert.Equal(t, "Board copied", m.status)

	m.clip = func(string) error { return errors.New("no clipboard") }
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Equal(t, "Copy failed", m.status)
}

func TestRestartAfterGameOver(t *testing.T) {
	m := newModel(t)

	// Hard drops at the spawn column never fill a row.
	for range 200 {
		if m.snap.State == game.GameOver {
			break
		}
		m = press(m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = step(t, m)
	}
	require.Equal(t, game.GameOver, m.snap.State)
	assert.Contains(t, m.View(), "Game Over.")

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, game.Running, m.snap.State)
	assert.Zero(t, m.snap.Score)
	assert.Zero(t, m.snap.Locks)
}

func TestRestartNeedsGameOver(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = step(t, m)
	require.EqualValues(t, 1, m.snap.Locks)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = step(t, m)
	assert.EqualValues(t, 1, m.snap.Locks)
}

func TestGhostToggle(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.True(t, m.ghost)
	assert.Contains(t, m.View(), "[]")
}
