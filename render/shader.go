package render

// ShaderSource is the Kage fragment program consuming the packed frame.
// The contract is fixed: per pixel, linearly scan the circle list, test
// point-in-circle by Euclidean distance, and on first hit color by a
// two-color lerp keyed on speed/MaxSpeed; background pixels oscillate
// between two fixed colors on sin(Time). The Circles capacity must match
// MaxCircles and its layout must match Stride.
var ShaderSource = []byte(`
//kage:unit pixels

package main

var Circles [256]vec4
var NumCircles int
var MaxSpeed float
var Time float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := dstPos.xy / imageDstSize()
	for i := 0; i < 256; i++ {
		if i >= NumCircles {
			break
		}
		c := Circles[i]
		if distance(uv, c.xy) < c.z {
			t := clamp(c.w/MaxSpeed, 0.0, 1.0)
			slow := vec3(0.15, 0.43, 0.84)
			fast := vec3(0.95, 0.33, 0.38)
			return vec4(mix(slow, fast, t), 1.0)
		}
	}
	bgA := vec3(0.08, 0.09, 0.13)
	bgB := vec3(0.16, 0.19, 0.30)
	w := 0.5 + 0.5*sin(Time)
	return vec4(mix(bgA, bgB, w), 1.0)
}
`)
