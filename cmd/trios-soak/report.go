package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/tos-kamiya/trios/driver"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Frame    time.Duration
	Rate     float64

	// Results
	Games         []GameResult
	Violations    []string
	TotalTime     time.Duration
	UpdateTime    Stats
	Scheduler     *driver.SchedulerStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type GameResult struct {
	Score int
	Stage int
	Locks uint64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Summary aggregates the finished games.
type Summary struct {
	Games     int
	Locks     uint64
	BestScore int
	AvgScore  float64
	BestStage int
}

func (r *Report) Summary() Summary {
	var s Summary
	total := 0
	for _, g := range r.Games {
		s.Games++
		s.Locks += g.Locks
		s.BestScore = max(s.BestScore, g.Score)
		s.BestStage = max(s.BestStage, g.Stage)
		total += g.Score
	}
	if s.Games > 0 {
		s.AvgScore = float64(total) / float64(s.Games)
	}
	return s
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# TRIOS Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame:** {{.Frame}}
- **Key Rate:** {{printf "%.2f" .Rate}}

## Games
{{with .Summary -}}
- **Finished Games:** {{.Games}}
- **Locks:** {{.Locks}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Best Stage:** {{.BestStage}}
{{- end}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{if .Scheduler}}
## Systems
{{range .Scheduler.Systems -}}
- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Intents
{{range .Scheduler.Intents -}}
- {{.Intent}}: {{.Applied}} applied, {{.Ignored}} ignored
{{end}}{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .Violations}}
## Invariant Violations
{{range .Violations -}}
- {{.}}
{{end}}{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
