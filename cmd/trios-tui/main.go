package main

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/sound"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	ghost := flag.Bool("ghost", false, "Show where a hard drop would land.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	volume := flag.Float64("volume", 0.5, "Sound effect volume, 1 is unchanged.")
	logFile := flag.String("log", "", "Write logs to this file.")
	flag.Parse()

	// The terminal belongs to the program, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", log.LstdFlags).Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	engine, err := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(*seed, 1)))
	if err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Fatalf("Failed to create engine: %v", err)
	}

	var extra []driver.System
	if !*mute {
		player := sound.NewPlayer(*volume)
		if err := player.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Cleanup()
			extra = append(extra, &sound.System{Sink: player})
		}
	}

	log.Printf("Starting game with seed %d", *seed)
	program := tea.NewProgram(NewModel(engine, *ghost, extra...), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Program error: %v", err)
		os.Exit(1)
	}
	log.Printf("Final score %d at stage %d", engine.Score(), engine.Stage())
}
