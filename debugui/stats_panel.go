package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/tos-kamiya/trios/driver"
)

// StatsPanel shows frame times, per-system timings and intent counters.
type StatsPanel struct {
	scheduler     *driver.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(scheduler *driver.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time to the history.
func (ps *StatsPanel) Record(frame *driver.Frame) {
	ps.frameHistory[ps.frameIndex] = float32(frame.DeltaTime.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (ps *StatsPanel) AverageFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *StatsPanel) Render(frame *driver.Frame) {
	ps.Record(frame)

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 300), imgui.CondOnce)
	if !imgui.BeginV("Scheduler Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Intents") {
		for _, in := range stats.Intents {
			imgui.BulletText(fmt.Sprintf("%s: %d applied, %d ignored", in.Intent, in.Applied, in.Ignored))
		}
		imgui.TreePop()
	}

	imgui.End()
}
