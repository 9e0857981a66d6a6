// Package widgets provides the Gio UI widgets for the visualizer.
package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lacam-mapf/internal/solver"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/state"
)

// Toolbar provides the step/step-back/reset/play controls.
type Toolbar struct {
	state *state.State

	stepBtn     widget.Clickable
	stepBackBtn widget.Clickable
	resetBtn    widget.Clickable
	playBtn     widget.Clickable
	pauseBtn    widget.Clickable
}

// NewToolbar creates a toolbar bound to st.
func NewToolbar(st *state.State) *Toolbar {
	return &Toolbar{state: st}
}

// Layout renders the toolbar and dispatches any clicks from this frame.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	t.handleClicks(gtx)

	height := 48
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceStart}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.iconButton(gtx, th, &t.stepBackBtn, "|<")
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if t.state.Playing {
						return t.iconButton(gtx, th, &t.pauseBtn, "||")
					}
					return t.iconButton(gtx, th, &t.playBtn, ">")
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.iconButton(gtx, th, &t.stepBtn, ">|")
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.iconButton(gtx, th, &t.resetBtn, "[]")
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Dimensions{}
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.statusLabel(gtx, th)
				}),
			)
		})
}

func (t *Toolbar) statusLabel(gtx layout.Context, th *material.Theme) layout.Dimensions {
	d := t.state.Driver
	text := fmt.Sprintf("%s | step %d | %s", d.Phase(), d.StepCount(), d.Status())
	label := material.Label(th, 12, text)
	label.Color = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	return label.Layout(gtx)
}

func (t *Toolbar) iconButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if btn.Hovered() {
		bg.R, bg.G, bg.B = addU8(bg.R, 15), addU8(bg.G, 15), addU8(bg.B, 15)
	}
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 32, Y: 28}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.stepBtn.Clicked(gtx) {
		if t.state.Driver.Status() == solver.StatusRunning {
			t.state.Driver.Step()
		}
	}
	for t.stepBackBtn.Clicked(gtx) {
		t.state.Driver.StepBack()
	}
	for t.resetBtn.Clicked(gtx) {
		_ = t.state.Driver.Reset()
		t.state.Playing = false
	}
	for t.playBtn.Clicked(gtx) {
		t.state.TogglePlay()
	}
	for t.pauseBtn.Clicked(gtx) {
		t.state.TogglePlay()
	}
}

func addU8(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}
