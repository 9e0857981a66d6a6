package draw

import (
	"image/color"

	"gioui.org/layout"

	"github.com/elektrokombinacija/lacam-mapf/internal/core"
	"github.com/elektrokombinacija/lacam-mapf/internal/vis/interact"
)

// agentPalette cycles distinct colors across agent ids so nearby agents
// stay visually distinguishable without per-instance configuration.
var agentPalette = []color.NRGBA{
	{R: 230, G: 120, B: 60, A: 255},
	{R: 90, G: 200, B: 230, A: 255},
	{R: 210, G: 90, B: 210, A: 255},
	{R: 230, G: 210, B: 70, A: 255},
	{R: 120, G: 220, B: 120, A: 255},
	{R: 160, G: 140, B: 230, A: 255},
}

// AgentColor returns the palette color for an agent id.
func AgentColor(id core.AgentID) color.NRGBA {
	return agentPalette[int(id)%len(agentPalette)]
}

// DrawAgent draws one agent as a filled circle at pos, tinted by id and
// optionally highlighted as selected.
func DrawAgent(gtx layout.Context, pos core.Pos, id core.AgentID, camera *interact.Camera, selected bool) {
	col := AgentColor(id)
	if selected {
		col = color.NRGBA{R: 255, G: 255, B: 150, A: 255}
	}
	sx, sy := camera.WorldToScreen(pos.X, pos.Y)
	drawFilledCircle(gtx, sx, sy, 7*camera.Zoom, col)
}

// DrawAgents draws every agent at its position in cfg.
func DrawAgents(gtx layout.Context, g *core.Graph, cfg core.Configuration, camera *interact.Camera, selected core.AgentID) {
	for i, vid := range cfg {
		v := g.Vertex(vid)
		if v == nil {
			continue
		}
		DrawAgent(gtx, v.Pos, core.AgentID(i), camera, core.AgentID(i) == selected)
	}
}
