package vmath

import "math"

// Normalize2D returns the unit vector of (x, y), zero-safe.
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag < Epsilon {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns the Euclidean length of (x, y).
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns the squared magnitude without the sqrt.
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// ClampMagnitude limits the vector to maxMag while preserving direction.
// Returns the vector unchanged if its magnitude is within the limit.
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag < Epsilon {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// RotateVector rotates (x, y) by angle radians counter-clockwise.
func RotateVector(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// DotProduct returns x1*x2 + y1*y2.
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Reflect returns the velocity reflected off a surface with the given
// unit normal: vel' = vel - 2 * dot(vel, normal) * normal.
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	dot2 := 2 * DotProduct(velX, velY, normalX, normalY)
	return velX - dot2*normalX, velY - dot2*normalY
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise.
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// ReflectAxisX returns the velocity reflected off a vertical wall.
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns the velocity reflected off a horizontal wall.
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
