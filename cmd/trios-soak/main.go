package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak run should last.")
	games := flag.Int("games", 0, "Stop after this many finished games (0 for no limit).")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator and the bot.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time per frame.")
	rate := flag.Float64("rate", 0.2, "Chance of a bot key press per frame.")
	flag.Parse()

	log.Println("Starting soak run...")

	cfg := game.DefaultConfig()
	engine, err := game.New(cfg, rand.New(rand.NewPCG(*seed, 1)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	scheduler := driver.NewScheduler(engine)
	scheduler.Register(&Bot{Rand: rand.New(rand.NewPCG(*seed, 2)), Rate: *rate})
	scheduler.Register(&driver.Gravity{})

	report := &Report{
		Duration: *duration,
		Seed:     *seed,
		Frame:    *frame,
		Rate:     *rate,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			snap := scheduler.Once(*frame)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if err := check(snap, cfg); err != nil {
				report.Violations = append(report.Violations, fmt.Sprintf("game %d, lock %d: %v", len(report.Games)+1, snap.Locks, err))
			}

			if snap.State == game.GameOver {
				report.Games = append(report.Games, GameResult{
					Score: snap.FinalScore,
					Stage: snap.Stage,
					Locks: snap.Locks,
				})
				if *games > 0 && len(report.Games) >= *games {
					break Loop
				}
				engine.Reset()
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		log.Fatalf("%d invariant violations", len(report.Violations))
	}
}
