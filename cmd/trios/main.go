package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tos-kamiya/trios/debugui"
	debugui_ebiten "github.com/tos-kamiya/trios/debugui/ebiten"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/export"
	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/render"
	"github.com/tos-kamiya/trios/sound"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	scale := flag.Float64("scale", 1, "Window scale.")
	debug := flag.Bool("debug", false, "Show the ImGui debug panels.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	volume := flag.Float64("volume", 0.5, "Sound effect volume, 1 is unchanged.")
	ghost := flag.Bool("ghost", false, "Outline where a hard drop would land.")
	shots := flag.String("shots", ".", "Directory for F12 screenshots.")
	logFile := flag.String("log", "", "Write logs to this file instead of stderr.")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	engine, err := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(*seed, 1)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	opts := render.DefaultOptions()
	opts.Ghost = *ghost
	w, h := render.Size(engine.Snapshot(), opts)
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	winW, winH := int(math.Ceil(w*(*scale))), int(math.Ceil(h*(*scale)))

	g := &Game{
		engine:  engine,
		opts:    opts,
		painter: newPainter(),
		gravity: &driver.Gravity{},
		shots:   *shots,
		width:   width,
		height:  height,
	}

	var input *debugui.InputState
	if *debug {
		g.imgui = debugui_ebiten.NewImguiBackend("TRIOS", winW, winH)
	} else {
		ebiten.SetWindowSize(winW, winH)
		ebiten.SetWindowTitle("TRIOS")
	}

	g.scheduler = driver.NewScheduler(engine)
	ui := &debugui.System{}
	if *debug {
		input = &ui.Input
	}
	g.scheduler.Register(&KeyboardSystem{Keys: NewKeys(), Input: input})
	g.scheduler.Register(g.gravity)

	if !*mute {
		player := sound.NewPlayer(*volume)
		if err := player.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Cleanup()
			g.scheduler.Register(&sound.System{Sink: player})
		}
	}

	if *debug {
		ui.Panels = []debugui.Panel{
			&debugui.StatePanel{Engine: engine},
			debugui.NewStatsPanel(g.scheduler, 120),
			&debugui.HistoryPanel{Engine: engine},
		}
		g.scheduler.Register(ui)
	}

	log.Printf("Starting game with seed %d", *seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("Final score %d at stage %d", engine.Score(), engine.Stage())
}

// Game drives the scheduler from ebiten's update loop and draws the latest
// snapshot.
type Game struct {
	engine    *game.Engine
	scheduler *driver.Scheduler
	gravity   *driver.Gravity
	imgui     *debugui_ebiten.ImguiBackend
	painter   *painter
	exporter  *export.Painter
	opts      render.Options
	shots     string
	width     int
	height    int

	snap game.Snapshot
	last time.Time
}

func (g *Game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	if justPressed(ebiten.KeyR) && g.engine.State() == game.GameOver {
		log.Printf("Restarting after final score %d", g.engine.Score())
		g.engine.Reset()
		g.gravity.Reset()
		g.scheduler.ResetCounters()
	}
	if justPressed(ebiten.KeyF12) {
		g.screenshot(now)
	}

	g.snap = g.scheduler.Once(dt)
	if g.snap.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) screenshot(now time.Time) {
	if g.exporter == nil {
		p, err := export.NewPainter()
		if err != nil {
			log.Printf("Screenshot failed: %v", err)
			return
		}
		g.exporter = p
	}

	path := export.ShotPath(g.shots, now)
	if err := g.exporter.SavePNG(g.engine.Snapshot(), g.opts, path); err != nil {
		log.Printf("Screenshot failed: %v", err)
		return
	}
	log.Printf("Saved %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.snap.Cells == nil {
		g.snap = g.engine.Snapshot()
	}
	g.painter.draw(screen, render.Build(g.snap, g.opts))

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(g.width, g.height)
	}
	return g.width, g.height
}
