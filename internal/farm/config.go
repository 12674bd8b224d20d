package farm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk farm description. See configs/kiwifarm.yaml for the
// reference layout and farm.schema.json for the structural rules.
type Config struct {
	Radius   int          `yaml:"radius" json:"radius"`
	Start    HexCoord     `yaml:"start" json:"start"`
	Basket   BasketConfig `yaml:"basket" json:"basket"`
	Stations []HexCoord   `yaml:"stations" json:"stations"`
	Plots    []PlotConfig `yaml:"plots" json:"plots"`
}

// BasketConfig bounds the picker's basket. Mass and volume limit
// independently; a harvest must fit under both.
type BasketConfig struct {
	MaxMassKg    float64 `yaml:"max_mass_kg" json:"max_mass_kg"`
	MaxVolumeCm3 float64 `yaml:"max_volume_cm3" json:"max_volume_cm3"`
}

// PlotConfig is one fruit plot entry in the config file.
type PlotConfig struct {
	Q         int     `yaml:"q" json:"q"`
	R         int     `yaml:"r" json:"r"`
	MassKg    float64 `yaml:"mass_kg" json:"mass_kg"`
	VolumeCm3 float64 `yaml:"volume_cm3" json:"volume_cm3"`
}

// LoadConfig reads and parses a farm config file. The raw bytes are checked
// against the embedded JSON Schema before unmarshaling, so shape errors
// surface with schema paths instead of partial structs. Semantic validation
// happens in New.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read farm config: %w", err)
	}
	if err := ValidateSchema(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal farm config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write farm config: %w", err)
	}
	return nil
}

// Validate checks the semantic rules a well-formed file can still break:
// coordinates must sit inside the declared radius, no cell may be both plot
// and station, capacities and plot properties must be positive. Every
// failure wraps ErrConfig.
func (c *Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("radius %d is negative: %w", c.Radius, ErrConfig)
	}
	if c.Basket.MaxMassKg <= 0 {
		return fmt.Errorf("basket max_mass_kg %v must be positive: %w", c.Basket.MaxMassKg, ErrConfig)
	}
	if c.Basket.MaxVolumeCm3 <= 0 {
		return fmt.Errorf("basket max_volume_cm3 %v must be positive: %w", c.Basket.MaxVolumeCm3, ErrConfig)
	}
	if !c.Start.InRadius(c.Radius) {
		return fmt.Errorf("start %s outside radius %d: %w", c.Start, c.Radius, ErrConfig)
	}
	if len(c.Stations) == 0 {
		return fmt.Errorf("at least one station required: %w", ErrConfig)
	}
	if len(c.Plots) > MaxPlots {
		return fmt.Errorf("%d plots exceeds the limit of %d: %w", len(c.Plots), MaxPlots, ErrConfig)
	}

	stations := make(map[HexCoord]struct{}, len(c.Stations))
	for _, s := range c.Stations {
		if !s.InRadius(c.Radius) {
			return fmt.Errorf("station %s outside radius %d: %w", s, c.Radius, ErrConfig)
		}
		if _, dup := stations[s]; dup {
			return fmt.Errorf("duplicate station %s: %w", s, ErrConfig)
		}
		stations[s] = struct{}{}
	}

	plots := make(map[HexCoord]struct{}, len(c.Plots))
	for _, p := range c.Plots {
		coord := HexCoord{Q: p.Q, R: p.R}
		if !coord.InRadius(c.Radius) {
			return fmt.Errorf("plot %s outside radius %d: %w", coord, c.Radius, ErrConfig)
		}
		if _, dup := plots[coord]; dup {
			return fmt.Errorf("duplicate plot %s: %w", coord, ErrConfig)
		}
		if _, clash := stations[coord]; clash {
			return fmt.Errorf("cell %s is both plot and station: %w", coord, ErrConfig)
		}
		if p.MassKg <= 0 {
			return fmt.Errorf("plot %s mass_kg %v must be positive: %w", coord, p.MassKg, ErrConfig)
		}
		if p.VolumeCm3 <= 0 {
			return fmt.Errorf("plot %s volume_cm3 %v must be positive: %w", coord, p.VolumeCm3, ErrConfig)
		}
		plots[coord] = struct{}{}
	}

	return nil
}

// DefaultConfig returns the reference kiwiberry farm: a radius-4 orchard
// with twelve plots in four mass classes and three collection stations
// around the rim. The picker starts at the origin with a 12 kg / 15000 cm³
// basket.
func DefaultConfig() *Config {
	return &Config{
		Radius: 4,
		Start:  HexCoord{Q: 0, R: 0},
		Basket: BasketConfig{MaxMassKg: 12, MaxVolumeCm3: 15000},
		Stations: []HexCoord{
			{Q: -3, R: 0},
			{Q: 3, R: -1},
			{Q: 2, R: 2},
		},
		Plots: []PlotConfig{
			// 2 kg class
			{Q: -1, R: 1, MassKg: 2, VolumeCm3: 2000},
			{Q: 0, R: 2, MassKg: 2, VolumeCm3: 2000},
			{Q: 2, R: -2, MassKg: 2, VolumeCm3: 2000},
			// 4 kg class
			{Q: 1, R: 0, MassKg: 4, VolumeCm3: 3000},
			{Q: -2, R: 1, MassKg: 4, VolumeCm3: 3000},
			{Q: 0, R: -1, MassKg: 4, VolumeCm3: 3000},
			{Q: 1, R: -2, MassKg: 4, VolumeCm3: 3000},
			// 6 kg class
			{Q: 1, R: -1, MassKg: 6, VolumeCm3: 5000},
			{Q: -1, R: 0, MassKg: 6, VolumeCm3: 5000},
			{Q: 2, R: 0, MassKg: 6, VolumeCm3: 5000},
			// 8 kg class, dense berries in small crates
			{Q: -2, R: 0, MassKg: 8, VolumeCm3: 3000},
			{Q: 3, R: -2, MassKg: 8, VolumeCm3: 3000},
		},
	}
}
