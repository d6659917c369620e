// Package world owns the canonical bubble collection and drives the
// fixed-order tick pipeline. The world is single-threaded: an external
// render loop calls Tick, then reads Snapshot. All structural changes
// inside a tick are buffered and applied in one place so a renderer
// never observes a half-updated state.
package world

import (
	"github.com/lixenwraith/bubble-fighter/config"
	"github.com/lixenwraith/bubble-fighter/core"
	"github.com/lixenwraith/bubble-fighter/physics"
	"github.com/lixenwraith/bubble-fighter/vmath"
)

// TickEvents summarizes one tick for the front-ends (audio cues, HUD).
type TickEvents struct {
	Collisions int
	Splits     int
	Merges     int
}

// World is the exclusive owner of the live bubble collection.
type World struct {
	cfg      *config.Config
	mode     core.Mode
	rng      *vmath.FastRand
	resolver *physics.Resolver
	grid     *physics.Grid

	bubbles []*core.Bubble
	spawned []*core.Bubble
	nextID  int
	now     float64
}

// New validates the configuration, seeds the RNG and spawns the initial
// population. A configuration error here is fatal; no tick may run first.
func New(cfg *config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:  cfg,
		mode: cfg.InteractionMode(),
		rng:  vmath.NewFastRand(cfg.Seed()),
	}
	w.resolver = physics.NewResolver(physics.Params{
		Mode:             w.mode,
		MinRadius:        cfg.MinRadius,
		MaxRadius:        cfg.MaxRadius,
		MaxSpeed:         cfg.MaxSpeed,
		TransferFraction: cfg.TransferFraction,
		SplitCooldown:    cfg.SplitCooldown,
		SplitAreaLoss:    cfg.SplitAreaLoss,
		ChildJitter:      cfg.ChildJitter,
	}, w.rng)
	w.grid = physics.NewGrid(cfg.WindowWidth, cfg.WindowHeight, 2*cfg.MaxRadius)
	w.spawnInitial()
	return w, nil
}

// spawnInitial places the starting population at seeded random positions
// inside the walls. Radii are drawn from the min-radius-stepped ladder
// below the maximum, velocities uniformly within a third of the speed cap.
func (w *World) spawnInitial() {
	ladder := radiusLadder(w.cfg.MinRadius, w.cfg.MaxRadius)
	for i := 0; i < w.cfg.BubbleCount; i++ {
		radius := ladder[w.rng.Intn(len(ladder))]
		x := w.rng.Range(radius, w.cfg.WindowWidth-radius)
		y := w.rng.Range(radius, w.cfg.WindowHeight-radius)
		vx := w.rng.Range(-w.cfg.MaxSpeed/3, w.cfg.MaxSpeed/3)
		vy := w.rng.Range(-w.cfg.MaxSpeed/3, w.cfg.MaxSpeed/3)
		w.bubbles = append(w.bubbles, core.NewBubble(w.allocID(), x, y, vx, vy, radius, w.cfg.Density, w.now))
	}
}

// radiusLadder returns min, 2*min, ... strictly below max. Falls back to
// the minimum when the interval admits no step.
func radiusLadder(min, max float64) []float64 {
	var ladder []float64
	for r := min; r < max-1e-12; r += min {
		ladder = append(ladder, r)
	}
	if len(ladder) == 0 {
		ladder = append(ladder, min)
	}
	return ladder
}

// Spawn adds a single bubble at the given state. Used for scenario
// setups and interactive front-ends; radius is the caller's
// responsibility to keep within the configured bounds.
func (w *World) Spawn(x, y, velX, velY, radius float64) *core.Bubble {
	b := core.NewBubble(w.allocID(), x, y, velX, velY, radius, w.cfg.Density, w.now)
	w.bubbles = append(w.bubbles, b)
	return b
}

func (w *World) allocID() int {
	id := w.nextID
	w.nextID++
	return id
}

// Tick advances the simulation by dt seconds. Phase order is fixed:
// integrate, walls, detect, resolve, apply queued spawns/destroys, clamp.
// An empty world ticks idle; that is not an error.
func (w *World) Tick(dt float64) TickEvents {
	w.now += dt
	var ev TickEvents

	// 1. Advance live bubbles
	for _, b := range w.bubbles {
		if b.Alive {
			b.Advance(dt)
		}
	}

	// 2. Walls always bounce, independent of mode
	for _, b := range w.bubbles {
		if b.Alive {
			physics.ResolveWalls(b, w.cfg.WindowWidth, w.cfg.WindowHeight)
		}
	}

	// 3. Detect on post-update positions
	pairs := w.grid.DetectPairs(w.bubbles)
	ev.Collisions = len(pairs)

	// 4. Resolve in ascending pair order; merges are queued by index so
	// the collection is not restructured mid-iteration
	type mergeReq struct{ a, b int }
	var merges []mergeReq
	for _, p := range pairs {
		if w.resolver.Resolve(w.bubbles[p.A], w.bubbles[p.B], w.now) == physics.OutcomeMerge {
			merges = append(merges, mergeReq{a: p.A, b: p.B})
		}
	}

	// 5. Apply queued structural changes
	for _, m := range merges {
		a, b := w.bubbles[m.a], w.bubbles[m.b]
		if !a.Alive || !b.Alive {
			continue // consumed by an earlier merge this tick
		}
		w.spawned = append(w.spawned, w.resolver.Merge(a, b, w.allocID, w.now))
		ev.Merges++
	}
	for _, b := range w.bubbles {
		if b.Alive && b.ToSplit {
			ca, cb := w.resolver.Split(b, w.allocID, w.now)
			w.spawned = append(w.spawned, ca, cb)
			ev.Splits++
		}
	}
	w.compact()

	// 6. Clamp every live bubble to the speed cap
	for _, b := range w.bubbles {
		b.ClampSpeed(w.cfg.MaxSpeed)
	}
	return ev
}

// compact drops destroyed bubbles and appends the tick's spawn queue,
// preserving relative order so ids stay monotonic in the collection.
func (w *World) compact() {
	live := w.bubbles[:0]
	for _, b := range w.bubbles {
		if b.Alive {
			live = append(live, b)
		}
	}
	w.bubbles = append(live, w.spawned...)
	w.spawned = w.spawned[:0]
}

// Now returns the accumulated simulation time in seconds.
func (w *World) Now() float64 { return w.now }

// Count returns the number of live bubbles.
func (w *World) Count() int { return len(w.bubbles) }

// Config returns the immutable configuration the world runs under.
func (w *World) Config() *config.Config { return w.cfg }
