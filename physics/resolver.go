package physics

import (
	"math"

	"github.com/lixenwraith/bubble-fighter/core"
	"github.com/lixenwraith/bubble-fighter/vmath"
)

// ChildRadiusFactor shrinks a parent into equal-area halves: two children
// of radius r/sqrt(2) together cover the parent's disc area exactly.
const ChildRadiusFactor = 1.0 / math.Sqrt2

// ChildVelocityAngle fans the two children out at +-45 degrees from the
// parent's outgoing direction.
const ChildVelocityAngle = math.Pi / 4

// Params are the run-wide resolver constants. These are stylized tuning
// values, not a physical collision law.
type Params struct {
	Mode      core.Mode
	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64

	// TransferFraction scales the kinetic energy exchanged along the
	// collision normal before it is compared against resistance.
	TransferFraction float64
	// SplitCooldown is the minimum simulation-time age and inter-split
	// interval, in seconds.
	SplitCooldown float64
	// SplitAreaLoss is the fraction of parent area lost to the fracture.
	SplitAreaLoss float64
	// ChildJitter randomizes the separation direction by up to this many
	// radians on each side.
	ChildJitter float64
}

// Outcome tells the world what structural change a pair resolution asks
// for. Velocity changes are applied in place; splits are flagged on the
// bubbles themselves.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeMerge
)

// Resolver applies the energy-transfer model to colliding pairs and
// synthesizes split children. All randomness comes from the injected
// generator so runs replay bit-for-bit from a seed.
type Resolver struct {
	p   Params
	rng *vmath.FastRand
}

func NewResolver(p Params, rng *vmath.FastRand) *Resolver {
	return &Resolver{p: p, rng: rng}
}

// Resolve handles one colliding pair. In overlap mode bubbles pass
// through untouched. Otherwise, if the pair is approaching, the standard
// mass-weighted elastic exchange updates both velocities; split mode then
// drains each bubble's energy pool by the transferred amount and flags
// fractures, merge mode requests a combine instead.
func (r *Resolver) Resolve(a, b *core.Bubble, now float64) Outcome {
	if r.p.Mode == core.ModeOverlap {
		return OutcomeNone
	}

	dist := vmath.Distance(a.X, a.Y, b.X, b.Y)
	var nx, ny float64
	if dist < vmath.Epsilon {
		// Coincident centers: substitute a fixed unit normal instead of
		// dividing by zero.
		nx, ny = 1, 0
	} else {
		nx, ny = (a.X-b.X)/dist, (a.Y-b.Y)/dist
	}

	relX, relY := a.VelX-b.VelX, a.VelY-b.VelY
	vn := vmath.DotProduct(relX, relY, nx, ny)
	if vn >= 0 {
		// Already separating; no exchange.
		return OutcomeNone
	}

	m1, m2 := a.Mass, b.Mass

	// Two-body elastic exchange along the normal
	newAX := a.VelX - (2*m2/(m1+m2))*vn*nx
	newAY := a.VelY - (2*m2/(m1+m2))*vn*ny
	newBX := b.VelX + (2*m1/(m1+m2))*vn*nx
	newBY := b.VelY + (2*m1/(m1+m2))*vn*ny
	newAX, newAY = vmath.ClampMagnitude(newAX, newAY, r.p.MaxSpeed)
	newBX, newBY = vmath.ClampMagnitude(newBX, newBY, r.p.MaxSpeed)

	a.VelX, a.VelY = newAX, newAY
	b.VelX, b.VelY = newBX, newBY

	// Transferred energy: a tunable fraction of the relative kinetic
	// energy along the collision normal (reduced mass), handed to each
	// bubble. An approximation, not a conservation law.
	reduced := m1 * m2 / (m1 + m2)
	transferred := r.p.TransferFraction * 0.5 * reduced * vn * vn

	switch r.p.Mode {
	case core.ModeSplit:
		r.damage(a, transferred, now)
		r.damage(b, transferred, now)
	case core.ModeMerge:
		if transferred > a.Resistance || transferred > b.Resistance {
			return OutcomeMerge
		}
	}
	return OutcomeNone
}

// damage drains the energy pool and flags a fracture when the hit
// exceeds resistance or the pool runs dry. Fractures that would produce
// sub-minimum children, or land inside the cooldown window, are
// suppressed; the elastic response already applied stands in.
func (r *Resolver) damage(b *core.Bubble, e, now float64) {
	if e <= 0 {
		return
	}
	b.RemainingEnergy -= e
	if e <= b.Resistance && b.RemainingEnergy >= b.Resistance {
		return
	}
	if r.ChildRadius(b.Radius) < r.p.MinRadius {
		return
	}
	if now-b.SpawnedAt < r.p.SplitCooldown || now-b.LastSplitAt < r.p.SplitCooldown {
		return
	}
	b.ToSplit = true
}

// ChildRadius returns the radius of each split child: equal-area halving
// shrunk further by the configured area loss.
func (r *Resolver) ChildRadius(parent float64) float64 {
	return parent * ChildRadiusFactor * math.Sqrt(1-r.p.SplitAreaLoss)
}

// Split fractures a flagged parent into two children and marks the
// parent destroyed. Children carry the parent's velocity rotated +-45
// degrees and sit offset one child-radius along the (jittered)
// perpendicular of the parent's travel so they do not instantly
// re-collide. Fresh children start with a full energy pool and an armed
// cooldown.
func (r *Resolver) Split(parent *core.Bubble, allocID func() int, now float64) (*core.Bubble, *core.Bubble) {
	rc := r.ChildRadius(parent.Radius)

	vax, vay := vmath.RotateVector(parent.VelX, parent.VelY, ChildVelocityAngle)
	vbx, vby := vmath.RotateVector(parent.VelX, parent.VelY, -ChildVelocityAngle)

	px, py := vmath.Perpendicular(parent.VelX, parent.VelY)
	px, py = vmath.Normalize2D(px, py)
	if px == 0 && py == 0 {
		// Parent at rest: pick a random separation direction
		angle := r.rng.Range(0, vmath.Tau)
		px, py = math.Cos(angle), math.Sin(angle)
	}
	if r.p.ChildJitter > 0 {
		px, py = vmath.RotateVector(px, py, r.rng.Range(-r.p.ChildJitter, r.p.ChildJitter))
	}

	childA := core.NewBubble(allocID(), parent.X+px*rc, parent.Y+py*rc, vax, vay, rc, parent.Density, now)
	childB := core.NewBubble(allocID(), parent.X-px*rc, parent.Y-py*rc, vbx, vby, rc, parent.Density, now)

	parent.Alive = false
	parent.ToSplit = false
	return childA, childB
}

// Merge combines a pair into one bubble of summed area and conserved
// momentum at the mass-weighted centroid, capped at the configured
// maximum radius. Both sources are marked destroyed.
func (r *Resolver) Merge(a, b *core.Bubble, allocID func() int, now float64) *core.Bubble {
	radius := math.Sqrt((a.Area() + b.Area()) / math.Pi)
	if radius > r.p.MaxRadius {
		radius = r.p.MaxRadius
	}
	m := a.Mass + b.Mass
	x := (a.X*a.Mass + b.X*b.Mass) / m
	y := (a.Y*a.Mass + b.Y*b.Mass) / m
	vx := (a.VelX*a.Mass + b.VelX*b.Mass) / m
	vy := (a.VelY*a.Mass + b.VelY*b.Mass) / m
	vx, vy = vmath.ClampMagnitude(vx, vy, r.p.MaxSpeed)

	a.Alive = false
	b.Alive = false
	return core.NewBubble(allocID(), x, y, vx, vy, radius, a.Density, now)
}
