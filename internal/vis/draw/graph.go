// Package draw renders the graph and agents onto a Gio canvas.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/interact"
)

var (
	ColorVertexDefault = color.NRGBA{R: 100, G: 120, B: 140, A: 255}
	ColorVertexStart   = color.NRGBA{R: 100, G: 140, B: 220, A: 255}
	ColorVertexGoal    = color.NRGBA{R: 80, G: 180, B: 100, A: 255}
	ColorEdgeDefault   = color.NRGBA{R: 80, G: 90, B: 100, A: 180}
)

// DrawGraph renders every edge and vertex of g. start and goal mark
// vertices that are some agent's current start or goal, for highlighting.
func DrawGraph(gtx layout.Context, g *core.Graph, camera *interact.Camera, start, goal map[core.VertexID]bool) {
	for _, e := range g.Edges() {
		p1, p2 := g.Vertex(e.From), g.Vertex(e.To)
		if p1 == nil || p2 == nil {
			continue
		}
		DrawEdge(gtx, p1.Pos, p2.Pos, camera, ColorEdgeDefault)
	}

	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil {
			continue
		}
		col := ColorVertexDefault
		switch {
		case goal[id]:
			col = ColorVertexGoal
		case start[id]:
			col = ColorVertexStart
		}
		DrawVertex(gtx, v.Pos, camera, col, 8)
	}
}

// DrawVertex draws a vertex as a filled circle.
func DrawVertex(gtx layout.Context, pos core.Pos, camera *interact.Camera, col color.NRGBA, radius float32) {
	sx, sy := camera.WorldToScreen(pos.X, pos.Y)
	drawFilledCircle(gtx, sx, sy, radius*camera.Zoom, col)
}

// DrawEdge draws an edge as a line between two world positions.
func DrawEdge(gtx layout.Context, p1, p2 core.Pos, camera *interact.Camera, col color.NRGBA) {
	x1, y1 := camera.WorldToScreen(p1.X, p1.Y)
	x2, y2 := camera.WorldToScreen(p2.X, p2.Y)
	drawLine(gtx, x1, y1, x2, y2, 2*camera.Zoom, col)
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))
	const segments = 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// HitTestVertex reports whether a screen point falls within radius of pos.
func HitTestVertex(screenX, screenY float32, pos core.Pos, camera *interact.Camera, radius float32) bool {
	vx, vy := camera.WorldToScreen(pos.X, pos.Y)
	dx := screenX - vx
	dy := screenY - vy
	r := radius * camera.Zoom
	return dx*dx+dy*dy <= r*r
}

// FindVertexAt returns the vertex id at the given screen coordinates, if
// any is within hit-test range.
func FindVertexAt(screenX, screenY float32, g *core.Graph, camera *interact.Camera) (core.VertexID, bool) {
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v != nil && HitTestVertex(screenX, screenY, v.Pos, camera, 10) {
			return id, true
		}
	}
	return 0, false
}

// DrawGrid draws a background grid covering the visible world bounds.
func DrawGrid(gtx layout.Context, camera *interact.Camera, gridSize float64, col color.NRGBA) {
	bounds := gtx.Constraints.Max
	minX, minY := camera.ScreenToWorld(0, 0)
	maxX, maxY := camera.ScreenToWorld(float32(bounds.X), float32(bounds.Y))

	startX := math.Floor(minX/gridSize) * gridSize
	for x := startX; x <= maxX; x += gridSize {
		sx, _ := camera.WorldToScreen(x, minY)
		if sx >= 0 && sx <= float32(bounds.X) {
			rect := image.Rect(int(sx), 0, int(sx)+1, bounds.Y)
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}

	startY := math.Floor(minY/gridSize) * gridSize
	for y := startY; y <= maxY; y += gridSize {
		_, sy := camera.WorldToScreen(minX, y)
		if sy >= 0 && sy <= float32(bounds.Y) {
			rect := image.Rect(0, int(sy), bounds.X, int(sy)+1)
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
}
