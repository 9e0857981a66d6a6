package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lacam-mapf/internal/vis/draw"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/interact"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/state"
)

// Workspace is the main 2D view: the graph plus the configuration the
// driver currently has on top of OPEN.
type Workspace struct {
	state  *state.State
	camera *interact.Camera
}

// NewWorkspace creates a workspace widget bound to st and camera.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{state: st, camera: camera}
}

// Layout renders the workspace.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	w.handlePointerEvents(gtx)

	draw.DrawGrid(gtx, w.camera, 50, color.NRGBA{R: 40, G: 45, B: 50, A: 255})

	start, goal := w.state.StartGoalSets()
	draw.DrawGraph(gtx, w.state.Graph, w.camera, start, goal)

	if cfg := w.state.Driver.CurrentConfiguration(); cfg != nil {
		draw.DrawAgents(gtx, w.state.Graph, cfg, w.camera, w.state.SelectedAgent)
	}

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Move,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		w.camera.HandleEvent(gtx, pe)
		if pe.Kind == pointer.Press && pe.Buttons.Contain(pointer.ButtonPrimary) {
			w.handleClick(pe.Position.X, pe.Position.Y)
		}
	}
}

func (w *Workspace) handleClick(screenX, screenY float32) {
	if id, ok := draw.FindVertexAt(screenX, screenY, w.state.Graph, w.camera); ok {
		w.state.SelectVertex(id)
	}
}
