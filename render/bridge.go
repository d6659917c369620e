// Package render is the bridge between world snapshots and the two
// front-ends. The GPU path packs bubbles into the flat vec4 buffer the
// fragment shader scans; the terminal path rasterizes the same frame
// into cells. The shader-facing layout is a fixed contract.
package render

import "github.com/lixenwraith/bubble-fighter/world"

const (
	// Stride is the float count per bubble: x, y, radius, speed.
	Stride = 4
	// MaxCircles is the shader's uniform array capacity. Frames beyond
	// it are truncated in collection order.
	MaxCircles = 256
)

// Frame is one packed snapshot. Data holds Count*Stride floats with
// positions and radius normalized into [0,1] texture space; speed stays
// in world units and is keyed against MaxSpeed in the shader.
type Frame struct {
	Data     []float32
	Count    int
	MaxSpeed float32
	Time     float32
}

// Pack flattens a snapshot into the shader buffer layout. MaxSpeed is
// the largest speed observed in the frame, falling back to the
// configured cap for an empty or motionless frame so the shader never
// divides by zero.
func Pack(s world.Snapshot) Frame {
	n := len(s.Bubbles)
	if n > MaxCircles {
		n = MaxCircles
	}
	data := make([]float32, 0, n*Stride)
	maxSpeed := 0.0
	for i := 0; i < n; i++ {
		b := s.Bubbles[i]
		data = append(data,
			float32(b.X/s.Width),
			float32(b.Y/s.Height),
			float32(b.Radius/s.Height),
			float32(b.Speed),
		)
		if b.Speed > maxSpeed {
			maxSpeed = b.Speed
		}
	}
	if maxSpeed == 0 {
		maxSpeed = s.MaxSpeed
	}
	return Frame{
		Data:     data,
		Count:    n,
		MaxSpeed: float32(maxSpeed),
		Time:     float32(s.Time),
	}
}

// ShaderData returns the frame buffer zero-padded to the shader's fixed
// uniform array length.
func (f Frame) ShaderData() []float32 {
	out := make([]float32, MaxCircles*Stride)
	copy(out, f.Data)
	return out
}
