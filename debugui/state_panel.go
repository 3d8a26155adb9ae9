package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

// StatePanel shows the engine's snapshot as a read-only tree, plus the shape
// weights of the current stage.
type StatePanel struct {
	Engine *game.Engine
}

func (sp *StatePanel) Render(frame *driver.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)
	if !imgui.BeginV("Engine State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := sp.Engine.Snapshot()

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d  Combo: x%d", snap.Score, snap.Combo))
	imgui.Text(fmt.Sprintf("Stage: %d  Lines: %d/%d", snap.Stage, snap.StageLines, snap.StageThreshold))
	imgui.Text(fmt.Sprintf("Fall Delay: %s", snap.FallDelay))
	imgui.Separator()

	if imgui.TreeNodeStr("Shape Weights") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("WeightsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Weight")
			imgui.TableSetupColumn("Chance")
			imgui.TableHeadersRow()

			total := 0
			for _, w := range snap.Weights {
				total += w
			}
			for i, shape := range sp.Engine.Catalog().Shapes() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.Name())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.Weights[i]))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f%%", 100*float64(snap.Weights[i])/float64(total)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Snapshot") {
		renderRows(globalReflectionCache.Describe(snap))
		imgui.TreePop()
	}

	imgui.End()
}

func renderRows(rows []Row) {
	for _, row := range rows {
		if row.Children == nil {
			imgui.BulletText(fmt.Sprintf("%s: %s", row.Name, row.Value))
			continue
		}
		if imgui.TreeNodeStr(row.Name) {
			renderRows(row.Children)
			imgui.TreePop()
		}
	}
}
