package physics

import "github.com/lixenwraith/bubble-fighter/core"

// ResolveWalls bounces a bubble whose perimeter crosses the world edge.
// The normal velocity component is reflected only while moving outward,
// so a bubble already inside the wall band cannot be re-flipped into
// oscillation and never escapes. Walls bounce in every interaction mode.
func ResolveWalls(b *core.Bubble, width, height float64) {
	if (b.X-b.Radius <= 0 && b.VelX < 0) || (b.X+b.Radius >= width && b.VelX > 0) {
		b.Reflect(core.AxisX)
	}
	if (b.Y-b.Radius <= 0 && b.VelY < 0) || (b.Y+b.Radius >= height && b.VelY > 0) {
		b.Reflect(core.AxisY)
	}
}
