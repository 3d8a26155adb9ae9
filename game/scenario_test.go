package game

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// Scenario files under testdata/ describe a board, a starting piece, a list
// of intents and the expected outcome. The board section is bottom-aligned:
// its last line is the floor row. '#' is filled and '.' is empty.
func TestScenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)
			runScenario(t, ar)
		})
	}
}

func runScenario(t *testing.T, ar *txtar.Archive) {
	sections := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		sections[f.Name] = string(f.Data)
	}

	e := newTestEngine(t, pickI)
	loadBoard(t, e.grid, sections["board"])
	applySetup(t, e, sections["setup"])

	for _, word := range strings.Fields(sections["intents"]) {
		in, ok := ParseIntent(word)
		require.True(t, ok, "unknown intent %q", word)
		e.Handle(in)
	}

	s := e.Snapshot()
	for key, val := range pairs(t, sections["want"]) {
		switch key {
		case "score":
			assert.Equal(t, atoi(t, val), s.Score, key)
		case "combo":
			assert.Equal(t, atoi(t, val), s.Combo, key)
		case "stage":
			assert.Equal(t, atoi(t, val), s.Stage, key)
		case "stage-lines":
			assert.Equal(t, atoi(t, val), s.StageLines, key)
		case "lines":
			assert.Equal(t, atoi(t, val), s.LastLock.Lines, key)
		case "locks":
			assert.Equal(t, uint64(atoi(t, val)), s.Locks, key)
		case "state":
			assert.Equal(t, val, s.State.String(), key)
		case "fall-delay":
			d, err := time.ParseDuration(val)
			require.NoError(t, err)
			assert.Equal(t, d, s.FallDelay, key)
		default:
			t.Fatalf("unknown want key %q", key)
		}
	}

	if want, ok := sections["want-board"]; ok {
		assert.Equal(t, strings.TrimSpace(want), strings.TrimSpace(dumpBoard(e.grid, countLines(want))))
	}
}

func loadBoard(t *testing.T, g *Grid, board string) {
	lines := boardLines(board)
	require.LessOrEqual(t, len(lines), g.Height())
	top := g.Height() - len(lines)
	for i, line := range lines {
		require.Len(t, line, g.Width(), "board row %d", i)
		for x, ch := range line {
			if ch == '#' {
				g.Lock([]Point{{x, top + i}}, gray)
			}
		}
	}
}

func applySetup(t *testing.T, e *Engine, setup string) {
	kv := pairs(t, setup)

	name, x, y := "I", e.current.X, e.current.Y
	if v, ok := kv["piece"]; ok {
		name = v
	}
	if v, ok := kv["pivot"]; ok {
		_, err := fmt.Sscanf(v, "%d,%d", &x, &y)
		require.NoError(t, err, "pivot %q", v)
	}
	setCurrent(t, e, name, x, y)

	for key, val := range kv {
		switch key {
		case "piece", "pivot":
		case "rotate":
			for range atoi(t, val) {
				e.current.CommitRotation(e.current.Rotated())
			}
		case "combo":
			e.combo = atoi(t, val)
		case "stage":
			e.stage = atoi(t, val)
			e.threshold = e.cfg.StageThreshold(e.stage)
			e.fallDelay = e.cfg.StageFallDelay(e.stage)
		case "stage-lines":
			e.stageLines = atoi(t, val)
		case "score":
			e.score = atoi(t, val)
		default:
			t.Fatalf("unknown setup key %q", key)
		}
	}
}

func pairs(t *testing.T, section string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		require.True(t, ok, "malformed line %q", line)
		out[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return out
}

func boardLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func countLines(s string) int { return len(boardLines(s)) }

// dumpBoard renders the bottom n rows of g in the scenario board format.
func dumpBoard(g *Grid, n int) string {
	var b strings.Builder
	for y := g.Height() - n; y < g.Height(); y++ {
		for x := range g.Width() {
			if g.Filled(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func atoi(t *testing.T, s string) int {
	n, err := strconv.Atoi(s)
	require.NoError(t, err, "number %q", s)
	return n
}
