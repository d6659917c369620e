package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// RGB is a true-color triple for terminal cells.
type RGB struct {
	R, G, B uint8
}

// The same palette the shader uses, quantized to 8-bit.
var (
	rgbSlow = RGB{38, 110, 214}
	rgbFast = RGB{242, 84, 97}
	rgbBgA  = RGB{20, 23, 33}
	rgbBgB  = RGB{41, 48, 77}
)

func lerpRGB(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func (c RGB) tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TerminalRenderer rasterizes a packed frame into terminal cells. Each
// cell samples its center in [0,1] uv space and runs the same first-hit
// circle scan as the fragment shader.
type TerminalRenderer struct{}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// Draw fills the whole screen; the caller shows it.
func (r *TerminalRenderer) Draw(s tcell.Screen, f Frame) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	bg := lerpRGB(rgbBgA, rgbBgB, 0.5+0.5*math.Sin(float64(f.Time)))
	bgStyle := tcell.StyleDefault.Background(bg.tcell())

	for cy := 0; cy < h; cy++ {
		v := (float64(cy) + 0.5) / float64(h)
		for cx := 0; cx < w; cx++ {
			u := (float64(cx) + 0.5) / float64(w)
			style := bgStyle
			for i := 0; i < f.Count; i++ {
				x := float64(f.Data[i*Stride])
				y := float64(f.Data[i*Stride+1])
				radius := float64(f.Data[i*Stride+2])
				speed := float64(f.Data[i*Stride+3])
				dx, dy := u-x, v-y
				if math.Sqrt(dx*dx+dy*dy) < radius {
					c := lerpRGB(rgbSlow, rgbFast, speed/float64(f.MaxSpeed))
					style = tcell.StyleDefault.Background(c.tcell())
					break
				}
			}
			s.SetContent(cx, cy, ' ', nil, style)
		}
	}
}
