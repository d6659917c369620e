// Package config holds the simulation hyperparameter bundle. Values load
// from an optional TOML file over defaults, with command-line overrides
// applied by the front-ends. Validate is the single startup gate; the
// simulation never re-checks configuration per tick.
package config

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bubble-fighter/core"
)

// DefaultSeed keeps runs reproducible when no seed is configured.
const DefaultSeed uint64 = 1

// Config is the recognized hyperparameter set. World-space spans
// [0, WindowWidth] x [0, WindowHeight]; the defaults use the normalized
// unit square with radii and speeds in the same units.
type Config struct {
	BubbleCount  int     `toml:"bubble_count"`
	WindowWidth  float64 `toml:"window_width"`
	WindowHeight float64 `toml:"window_height"`
	MinRadius    float64 `toml:"min_radius"`
	MaxRadius    float64 `toml:"max_radius"`
	MaxSpeed     float64 `toml:"max_speed"`
	Density      float64 `toml:"density"`
	Mode         string  `toml:"mode"`
	RandomSeed   uint64  `toml:"random_seed"`

	// Stylized tuning constants, preserved from the reference model
	// rather than derived from a physical law.
	TransferFraction float64 `toml:"transfer_fraction"`
	SplitCooldown    float64 `toml:"split_cooldown"`
	SplitAreaLoss    float64 `toml:"split_area_loss"`
	ChildJitter      float64 `toml:"child_jitter"`
}

// Default returns the reference scenario: 15 bubbles in the unit square.
func Default() *Config {
	return &Config{
		BubbleCount:      15,
		WindowWidth:      1.0,
		WindowHeight:     1.0,
		MinRadius:        0.03,
		MaxRadius:        0.15,
		MaxSpeed:         1.0,
		Density:          core.DensityIron,
		Mode:             core.ModeSplit.String(),
		RandomSeed:       DefaultSeed,
		TransferFraction: 1.0,
		SplitCooldown:    0.5,
		SplitAreaLoss:    0.0,
		ChildJitter:      0.0,
	}
}

// Load decodes the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unrecognized keys %v", path, undecoded)
	}
	return cfg, nil
}

// InteractionMode parses the configured mode string. Validate must have
// passed before this is called.
func (c *Config) InteractionMode() core.Mode {
	m, _ := core.ParseMode(c.Mode)
	return m
}

// Seed returns the effective RNG seed.
func (c *Config) Seed() uint64 {
	if c.RandomSeed == 0 {
		return DefaultSeed
	}
	return c.RandomSeed
}

// Validate reports the first invalid hyperparameter. Any error here is
// fatal at startup.
func (c *Config) Validate() error {
	if c.BubbleCount < 0 {
		return fmt.Errorf("bubble_count must be >= 0, got %d", c.BubbleCount)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %gx%g", c.WindowWidth, c.WindowHeight)
	}
	if c.MinRadius <= 0 {
		return fmt.Errorf("min_radius must be positive, got %g", c.MinRadius)
	}
	if c.MinRadius > c.MaxRadius {
		return fmt.Errorf("min_radius %g exceeds max_radius %g", c.MinRadius, c.MaxRadius)
	}
	if 2*c.MaxRadius > math.Min(c.WindowWidth, c.WindowHeight) {
		return fmt.Errorf("max_radius %g does not fit the %gx%g window", c.MaxRadius, c.WindowWidth, c.WindowHeight)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("max_speed must be positive, got %g", c.MaxSpeed)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", c.Density)
	}
	if _, err := core.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.TransferFraction < 0 || c.TransferFraction > 1 {
		return fmt.Errorf("transfer_fraction must be in [0,1], got %g", c.TransferFraction)
	}
	if c.SplitCooldown < 0 {
		return fmt.Errorf("split_cooldown must be >= 0, got %g", c.SplitCooldown)
	}
	if c.SplitAreaLoss < 0 || c.SplitAreaLoss >= 1 {
		return fmt.Errorf("split_area_loss must be in [0,1), got %g", c.SplitAreaLoss)
	}
	if c.ChildJitter < 0 || c.ChildJitter > math.Pi {
		return fmt.Errorf("child_jitter must be in [0,pi], got %g", c.ChildJitter)
	}
	return nil
}
