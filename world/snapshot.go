package world

// BubbleState is the per-bubble view a renderer consumes.
type BubbleState struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// Snapshot is a stable copy of the world taken between ticks. It shares
// no storage with the live collection, so a renderer may hold it while
// the next tick runs.
type Snapshot struct {
	Bubbles  []BubbleState
	Time     float64
	Width    float64
	Height   float64
	MaxSpeed float64 // configured cap, not the observed frame maximum
}

// Snapshot copies the live bubbles in collection order.
func (w *World) Snapshot() Snapshot {
	states := make([]BubbleState, 0, len(w.bubbles))
	for _, b := range w.bubbles {
		if !b.Alive {
			continue
		}
		states = append(states, BubbleState{X: b.X, Y: b.Y, Radius: b.Radius, Speed: b.Speed()})
	}
	return Snapshot{
		Bubbles:  states,
		Time:     w.now,
		Width:    w.cfg.WindowWidth,
		Height:   w.cfg.WindowHeight,
		MaxSpeed: w.cfg.MaxSpeed,
	}
}
