package widgets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lacam-mapf/internal/search"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/state"
)

// ConstraintTreeView renders the low-level constraint tree of the
// high-level node currently under expansion.
type ConstraintTreeView struct {
	state *state.State
}

// NewConstraintTreeView creates a view bound to st.
func NewConstraintTreeView(st *state.State) *ConstraintTreeView {
	return &ConstraintTreeView{state: st}
}

var (
	ColorNodePending  = color.NRGBA{R: 80, G: 100, B: 130, A: 255}
	ColorNodeSearched = color.NRGBA{R: 100, G: 150, B: 200, A: 255}
	ColorNodeSelected = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorTreeEdge     = color.NRGBA{R: 70, G: 80, B: 90, A: 255}
)

// Layout renders the tree panel, or an empty panel if no node is active.
func (v *ConstraintTreeView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	const width = 280
	height := gtx.Constraints.Max.Y

	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	layout.Inset{Left: unit.Dp(10), Top: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Label(th, 14, "constraint tree")
		label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		return label.Layout(gtx)
	})

	tree := v.state.Driver.CurrentTree()
	if tree != nil {
		v.drawTree(gtx, tree, width, height)
	}
	v.drawCounters(gtx, th)

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}

func (v *ConstraintTreeView) drawTree(gtx layout.Context, tree *search.ConstraintTree, width, height int) {
	levels := make(map[int][]*search.ConstraintNode)
	var collect func(n *search.ConstraintNode)
	collect = func(n *search.ConstraintNode) {
		levels[n.Depth] = append(levels[n.Depth], n)
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(tree.Root)

	positions := make(map[int]f32.Point)
	const levelHeight, marginX = 40, 20
	for depth, nodes := range levels {
		avail := float32(width - 2*marginX)
		for i, n := range nodes {
			x := float32(marginX) + avail*float32(2*i+1)/float32(2*len(nodes))
			y := float32(30 + depth*levelHeight)
			positions[n.ID] = f32.Pt(x, y)
		}
	}

	var drawEdges func(n *search.ConstraintNode)
	drawEdges = func(n *search.ConstraintNode) {
		p1 := positions[n.ID]
		for _, c := range n.Children {
			p2 := positions[c.ID]
			drawTreeEdge(gtx, p1.X, p1.Y, p2.X, p2.Y)
			drawEdges(c)
		}
	}
	drawEdges(tree.Root)

	var drawNodes func(n *search.ConstraintNode)
	drawNodes = func(n *search.ConstraintNode) {
		p := positions[n.ID]
		if p.Y <= float32(height) {
			drawTreeNode(gtx, p.X, p.Y, nodeColor(n))
		}
		for _, c := range n.Children {
			drawNodes(c)
		}
	}
	drawNodes(tree.Root)
}

func nodeColor(n *search.ConstraintNode) color.NRGBA {
	if n.Selected {
		return ColorNodeSelected
	}
	if n.Searched {
		return ColorNodeSearched
	}
	return ColorNodePending
}

func drawTreeNode(gtx layout.Context, x, y float32, col color.NRGBA) {
	const radius = 9
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(x+radius, y))
	const segments = 12
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		px := x + radius*float32(math.Cos(angle))
		py := y + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(px-path.Pos().X, py-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawTreeEdge(gtx layout.Context, x1, y1, x2, y2 float32) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 1 {
		return
	}
	dx, dy = dx/length, dy/length
	const width = 2
	px, py := -dy*width/2, dx*width/2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, ColorTreeEdge, clip.Outline{Path: path.End()}.Op())
}

func (v *ConstraintTreeView) drawCounters(gtx layout.Context, th *material.Theme) {
	counters := v.state.Driver.CounterSnapshot()
	layout.Inset{Left: unit.Dp(10), Bottom: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return counterLabel(gtx, th, fmt.Sprintf("nodes generated: %d", counters.NodesGenerated))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return counterLabel(gtx, th, fmt.Sprintf("configurations explored: %d", counters.ConfigurationsExplored))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return counterLabel(gtx, th, fmt.Sprintf("open: %d", len(v.state.Driver.Open())))
				}),
			)
		})
	})
}

func counterLabel(gtx layout.Context, th *material.Theme, text string) layout.Dimensions {
	label := material.Label(th, 11, text)
	label.Color = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	return label.Layout(gtx)
}
