package farm

import (
	"errors"
	"fmt"
	"sort"
)

// ErrConfig is wrapped by every construction failure: out-of-bounds
// coordinates, a cell listed as both plot and station, non-positive
// capacities or plot properties. Callers test with errors.Is.
var ErrConfig = errors.New("invalid farm config")

// MaxPlots caps the number of fruit plots per farm. Harvested-plot sets are
// stored as one 64-bit word keyed by plot index, so the cap is hard.
const MaxPlots = 64

// FruitPlot is one fruit-bearing cell: where it is and what harvesting it
// adds to the basket. Harvests are atomic, so the whole mass and volume land
// in the basket or none of it does.
type FruitPlot struct {
	Coord  HexCoord `json:"coord"`
	Mass   float64  `json:"mass_kg"`    // kg, > 0
	Volume float64  `json:"volume_cm3"` // cm³, > 0
}

// Farm holds the immutable orchard environment: grid radius, fruit-plot
// table, collection stations, and basket capacity limits. Built once by New
// and never mutated afterward; the search components share it read-only.
type Farm struct {
	Radius    int
	Start     HexCoord
	MaxMass   float64 // basket mass limit, kg
	MaxVolume float64 // basket volume limit, cm³

	plots    []FruitPlot // ordered by (r, q); slice position is the plot index
	plotIdx  map[HexCoord]int
	stations []HexCoord // sorted like plots
	isStn    map[HexCoord]struct{}
}

// New builds a Farm from a validated config. It assigns every plot a stable
// index in (r, q) order; the search layer keys harvested-sets by these
// indices, so they must not depend on input ordering.
func New(cfg *Config) (*Farm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Farm{
		Radius:    cfg.Radius,
		Start:     cfg.Start,
		MaxMass:   cfg.Basket.MaxMassKg,
		MaxVolume: cfg.Basket.MaxVolumeCm3,
		plots:     make([]FruitPlot, 0, len(cfg.Plots)),
		plotIdx:   make(map[HexCoord]int, len(cfg.Plots)),
		stations:  make([]HexCoord, 0, len(cfg.Stations)),
		isStn:     make(map[HexCoord]struct{}, len(cfg.Stations)),
	}

	for _, p := range cfg.Plots {
		f.plots = append(f.plots, FruitPlot{
			Coord:  HexCoord{Q: p.Q, R: p.R},
			Mass:   p.MassKg,
			Volume: p.VolumeCm3,
		})
	}
	sortCoords := func(a, b HexCoord) bool {
		if a.R != b.R {
			return a.R < b.R
		}
		return a.Q < b.Q
	}
	sort.Slice(f.plots, func(i, j int) bool {
		return sortCoords(f.plots[i].Coord, f.plots[j].Coord)
	})
	for i, p := range f.plots {
		f.plotIdx[p.Coord] = i
	}

	f.stations = append(f.stations, cfg.Stations...)
	sort.Slice(f.stations, func(i, j int) bool {
		return sortCoords(f.stations[i], f.stations[j])
	})
	for _, s := range f.stations {
		f.isStn[s] = struct{}{}
	}

	return f, nil
}

// PlotAt returns the fruit plot at the given coordinate, if any.
func (f *Farm) PlotAt(c HexCoord) (FruitPlot, bool) {
	i, ok := f.plotIdx[c]
	if !ok {
		return FruitPlot{}, false
	}
	return f.plots[i], true
}

// PlotIndex returns the stable index of the plot at c, if any.
func (f *Farm) PlotIndex(c HexCoord) (int, bool) {
	i, ok := f.plotIdx[c]
	return i, ok
}

// Plot returns the plot with the given index. Index must be in [0, NumPlots).
func (f *Farm) Plot(i int) FruitPlot {
	return f.plots[i]
}

// Plots returns all fruit plots in index order. Callers must not mutate the
// returned slice.
func (f *Farm) Plots() []FruitPlot {
	return f.plots
}

// NumPlots returns the number of fruit plots.
func (f *Farm) NumPlots() int {
	return len(f.plots)
}

// IsStation returns true if c is a collection station.
func (f *Farm) IsStation(c HexCoord) bool {
	_, ok := f.isStn[c]
	return ok
}

// Stations returns the station coordinates in (r, q) order. Callers must not
// mutate the returned slice.
func (f *Farm) Stations() []HexCoord {
	return f.stations
}

// Occupiable returns true if the agent may stand on c. Every in-bounds cell
// is occupiable; plots and stations do not block movement.
func (f *Farm) Occupiable(c HexCoord) bool {
	return c.InRadius(f.Radius)
}

// TotalMass returns the summed mass of all plots, in kg.
func (f *Farm) TotalMass() float64 {
	var sum float64
	for _, p := range f.plots {
		sum += p.Mass
	}
	return sum
}

// TotalVolume returns the summed volume of all plots, in cm³.
func (f *Farm) TotalVolume() float64 {
	var sum float64
	for _, p := range f.plots {
		sum += p.Volume
	}
	return sum
}

// String returns a summary of the farm.
func (f *Farm) String() string {
	return fmt.Sprintf("Farm(radius=%d, plots=%d, stations=%d)", f.Radius, len(f.plots), len(f.stations))
}
