// Package core holds the bubble entity and the run-wide interaction mode.
// Entities are plain mutable state; the physics and world packages own all
// behaviour beyond the motion primitives defined here.
package core

import (
	"math"

	"github.com/lixenwraith/bubble-fighter/vmath"
)

// Stylized material constants carried over from the reference tuning.
// These are approximations, not a physical derivation.
const (
	// DensityIron is the default bubble density (kg/m^3, iron).
	DensityIron = 7874.0
	// ResistanceFactor scales density*radius into the fracture threshold.
	ResistanceFactor = 0.005
	// EnergyFactor sizes the damage pool relative to resistance.
	EnergyFactor = 10.0
)

// Axis identifies a wall orientation for velocity reflection.
type Axis uint8

const (
	AxisX Axis = iota // vertical wall, reflects VelX
	AxisY             // horizontal wall, reflects VelY
)

// Bubble is a circular body. Position and velocity are in world units
// (the world spans [0,W]x[0,H]); radius shares the same units.
type Bubble struct {
	ID int

	X, Y       float64
	VelX, VelY float64
	Radius     float64
	Density    float64

	// Derived from radius and density, recomputed on resize
	Mass       float64
	Resistance float64
	Energy     float64

	// RemainingEnergy is the damage pool drained by collision transfer.
	// It refills when the bubble splits.
	RemainingEnergy float64

	// Split bookkeeping in simulation seconds
	SpawnedAt   float64
	LastSplitAt float64

	Alive   bool
	ToSplit bool
}

// NewBubble creates a live bubble and derives its mass, resistance and
// energy pool from radius and density.
func NewBubble(id int, x, y, velX, velY, radius, density, now float64) *Bubble {
	b := &Bubble{
		ID:          id,
		X:           x,
		Y:           y,
		VelX:        velX,
		VelY:        velY,
		Radius:      radius,
		Density:     density,
		SpawnedAt:   now,
		LastSplitAt: now,
		Alive:       true,
	}
	b.Rederive()
	b.RemainingEnergy = b.Energy
	return b
}

// Rederive recomputes mass, resistance and the energy pool capacity from
// the current radius and density. Call after any radius change.
func (b *Bubble) Rederive() {
	b.Mass = b.Density * math.Pi * b.Radius * b.Radius
	b.Resistance = ResistanceFactor * b.Density * b.Radius
	b.Energy = EnergyFactor * b.Resistance
}

// Advance integrates position by velocity over dt. Pure inertial drift,
// no acceleration source.
func (b *Bubble) Advance(dt float64) {
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// ClampSpeed rescales velocity to maxSpeed if it exceeds it, preserving
// direction. Post-condition: |velocity| <= maxSpeed.
func (b *Bubble) ClampSpeed(maxSpeed float64) {
	b.VelX, b.VelY = vmath.ClampMagnitude(b.VelX, b.VelY, maxSpeed)
}

// Reflect negates the velocity component along the given wall axis.
func (b *Bubble) Reflect(axis Axis) {
	switch axis {
	case AxisX:
		b.VelX, b.VelY = vmath.ReflectAxisX(b.VelX, b.VelY)
	case AxisY:
		b.VelX, b.VelY = vmath.ReflectAxisY(b.VelX, b.VelY)
	}
}

// Speed returns the velocity magnitude.
func (b *Bubble) Speed() float64 {
	return vmath.Magnitude(b.VelX, b.VelY)
}

// KineticEnergy returns 0.5 * mass * |velocity|^2.
func (b *Bubble) KineticEnergy() float64 {
	return 0.5 * b.Mass * vmath.MagnitudeSq(b.VelX, b.VelY)
}

// Area returns the disc area, the mass proxy under constant density.
func (b *Bubble) Area() float64 {
	return math.Pi * b.Radius * b.Radius
}
