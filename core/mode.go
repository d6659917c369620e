package core

import "fmt"

// Mode selects the run-wide collision interaction. It is fixed at startup
// and consumed by the resolver; bubbles carry no per-entity behaviour.
type Mode uint8

const (
	ModeSplit Mode = iota
	ModeMerge
	ModeOverlap
	ModeBounce
)

var modeNames = map[Mode]string{
	ModeSplit:   "split",
	ModeMerge:   "merge",
	ModeOverlap: "overlap",
	ModeBounce:  "bounce",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeSplit, fmt.Errorf("unknown interaction mode %q (want split, merge, overlap or bounce)", s)
}
