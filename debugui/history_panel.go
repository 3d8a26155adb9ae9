package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

const historySize = 200

// HistoryPanel plots the score and the fall delay of the last locks.
type HistoryPanel struct {
	Engine *game.Engine

	scores []float32
	delays []float32
	offset int
	filled int
	locks  uint64
}

// Observe records a sample when a new lock has happened since the last call.
func (hp *HistoryPanel) Observe(s game.Snapshot) {
	if hp.scores == nil {
		hp.scores = make([]float32, historySize)
		hp.delays = make([]float32, historySize)
	}
	if s.Locks < hp.locks {
		// A new game: its lock counter starts over from zero.
		hp.offset, hp.filled, hp.locks = 0, 0, 0
	}
	if s.Locks == hp.locks {
		return
	}
	hp.locks = s.Locks

	hp.scores[hp.offset] = float32(s.Score)
	hp.delays[hp.offset] = float32(s.FallDelay.Milliseconds())
	hp.offset = (hp.offset + 1) % historySize
	hp.filled = min(hp.filled+1, historySize)
}

// Samples returns the recorded scores and fall delays, oldest first.
func (hp *HistoryPanel) Samples() (scores, delays []float32) {
	return hp.ordered(hp.scores), hp.ordered(hp.delays)
}

func (hp *HistoryPanel) ordered(ring []float32) []float32 {
	out := make([]float32, 0, hp.filled)
	start := (hp.offset - hp.filled + historySize) % historySize
	for i := range hp.filled {
		out = append(out, ring[(start+i)%historySize])
	}
	return out
}

func (hp *HistoryPanel) Render(frame *driver.Frame) {
	hp.Observe(hp.Engine.Snapshot())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(500, 300), imgui.CondOnce)

	if imgui.BeginV("Lock History", nil, 0) {
		scores, delays := hp.Samples()
		if len(scores) == 0 {
			imgui.Text("No locks yet")
		} else if imgui.BeginTabBar("HistoryTabs") {
			if imgui.BeginTabItem("Score") {
				if implot.BeginPlotV("Score", imgui.NewVec2(-1, -1), 0) {
					implot.SetupAxesV("Lock", "Score", 0, implot.AxisFlagsAutoFit)
					implot.PlotLineFloatPtrInt("score", &scores[0], int32(len(scores)))
					implot.EndPlot()
				}
				imgui.EndTabItem()
			}
			if imgui.BeginTabItem("Fall Delay") {
				if implot.BeginPlotV("Fall Delay", imgui.NewVec2(-1, -1), 0) {
					implot.SetupAxesV("Lock", "ms", 0, implot.AxisFlagsAutoFit)
					implot.PlotLineFloatPtrInt("delay", &delays[0], int32(len(delays)))
					implot.EndPlot()
				}
				imgui.EndTabItem()
			}
			imgui.EndTabBar()
		}
	}
	imgui.End()
}
