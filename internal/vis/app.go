// Package vis implements a Gio-based step-by-step visualizer for the
// LaCAM driver.
package vis

import (
	"image/color"
	"io"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/solver"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/interact"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/state"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/widgets"
)

// App is the visualizer's top-level window controller.
type App struct {
	state     *state.State
	theme     *material.Theme
	workspace *widgets.Workspace
	ctree     *widgets.ConstraintTreeView
	toolbar   *widgets.Toolbar
	camera    *interact.Camera
}

// NewApp builds a visualizer over a default demo instance.
func NewApp() *App {
	th := material.NewTheme()

	g, agents := defaultInstance()
	log := zerolog.New(io.Discard)
	driver := solver.NewDriver(g, agents, log)
	if err := driver.Initialize(); err != nil {
		panic(err)
	}

	st := state.NewState(g, agents, driver)
	camera := interact.NewCamera()

	return &App{
		state:     st,
		theme:     th,
		workspace: widgets.NewWorkspace(st, camera),
		ctree:     widgets.NewConstraintTreeView(st),
		toolbar:   widgets.NewToolbar(st),
		camera:    camera,
	}
}

// Run drives the Gio event loop until the window closes.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.state.Tick() {
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameRightArrow:
		if a.state.Driver.Status() == solver.StatusRunning {
			a.state.Driver.Step()
		}
	case key.NameLeftArrow:
		a.state.Driver.StepBack()
	case key.NameHome:
		_ = a.state.Driver.Reset()
		a.state.Playing = false
	case key.NameSpace:
		a.state.TogglePlay()
	case "R":
		a.camera.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.workspace.Layout(gtx, a.theme)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if a.state.Driver.Status() != solver.StatusRunning {
						return layout.Dimensions{}
					}
					return a.ctree.Layout(gtx, a.theme)
				}),
			)
		}),
	)
}

// defaultInstance builds a small grid instance for first-launch viewing.
func defaultInstance() (*core.Graph, []core.Agent) {
	const n = 7
	g := core.NewGraph()
	ids := make([][]core.VertexID, n)
	for y := 0; y < n; y++ {
		ids[y] = make([]core.VertexID, n)
		for x := 0; x < n; x++ {
			ids[y][x] = g.AddVertexAt(float64(x)*50, float64(y)*50)
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x < n-1 {
				g.AddEdge(ids[y][x], ids[y][x+1])
			}
			if y < n-1 {
				g.AddEdge(ids[y][x], ids[y+1][x])
			}
		}
	}

	agents := []core.Agent{
		{ID: 0, Start: ids[0][0], Goal: ids[n-1][n-1]},
		{ID: 1, Start: ids[0][n-1], Goal: ids[n-1][0]},
		{ID: 2, Start: ids[n-1][0], Goal: ids[0][n-1]},
	}
	return g, agents
}
