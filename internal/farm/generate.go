// Synthetic farm generation using layered simplex noise.
// Produces farm configs for admissibility and stress testing without
// hand-editing YAML. See design doc Section 4.
package farm

import (
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds synthetic farm generation parameters.
type GenConfig struct {
	Radius       int     // Hex grid radius
	Seed         int64   // Random seed (0 = random)
	PlotDensity  float64 // Fraction of non-start cells bearing fruit (0.0–1.0)
	Stations     int     // Number of collection stations to place
	MaxMassKg    float64 // Basket mass limit for the generated farm
	MaxVolumeCm3 float64 // Basket volume limit for the generated farm
}

// DefaultGenConfig returns parameters that mirror the reference kiwiberry
// farm's scale: radius 4, roughly a dozen plots, three stations.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:       4,
		Seed:         0,
		PlotDensity:  0.2,
		Stations:     3,
		MaxMassKg:    12,
		MaxVolumeCm3: 15000,
	}
}

// SmallGenConfig returns a tiny farm for rapid iteration and brute-force
// comparison tests.
func SmallGenConfig() GenConfig {
	return GenConfig{
		Radius:       2,
		Seed:         42,
		PlotDensity:  0.25,
		Stations:     1,
		MaxMassKg:    12,
		MaxVolumeCm3: 15000,
	}
}

// plotClasses are the four berry crate classes plots are drawn from, matching
// the reference farm: mass in kg, volume in cm³. The 8 kg class is dense
// fruit in small crates, so its volume is below the 6 kg class.
var plotClasses = [4]FruitPlot{
	{Mass: 2, Volume: 2000},
	{Mass: 4, Volume: 3000},
	{Mass: 6, Volume: 5000},
	{Mass: 8, Volume: 3000},
}

// Generate creates a synthetic farm config. The start is always the origin
// and never bears fruit. Output is deterministic for a fixed non-zero seed:
// cells are visited in grid order and every sort carries a coordinate
// tie-break.
func Generate(cfg GenConfig) *Config {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Two noise layers: one decides where fruit grows, one how much.
	densityNoise := opensimplex.NewNormalized(seed)
	sizeNoise := opensimplex.NewNormalized(seed + 1)

	start := HexCoord{Q: 0, R: 0}

	var cells []scoredCell

	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			if !coord.InRadius(cfg.Radius) {
				continue
			}

			// Hex axial → cartesian for noise sampling:
			// x = q + r*0.5, y = r * sqrt(3)/2.
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0

			cells = append(cells, scoredCell{
				coord: coord,
				score: octaveNoise(densityNoise, x, y, 3, 0.35, 0.5),
				size:  octaveNoise(sizeNoise, x, y, 2, 0.5, 0.5),
			})
		}
	}

	// Fruit grows on the highest-density cells. The start cell stays clear.
	numCells := len(cells)
	numPlots := int(math.Round(cfg.PlotDensity * float64(numCells-1)))
	if numPlots > MaxPlots {
		numPlots = MaxPlots
	}
	if free := numCells - 1 - cfg.Stations; numPlots > free {
		numPlots = free
	}
	if numPlots < 0 {
		numPlots = 0
	}

	plotCands := make([]scoredCell, 0, numCells-1)
	for _, c := range cells {
		if c.coord != start {
			plotCands = append(plotCands, c)
		}
	}
	sortScoredDesc(plotCands)

	plotSet := make(map[HexCoord]struct{}, numPlots)
	plots := make([]PlotConfig, 0, numPlots)
	for _, c := range plotCands[:numPlots] {
		class := plotClasses[classIndex(c.size)]
		plotSet[c.coord] = struct{}{}
		plots = append(plots, PlotConfig{
			Q:         c.coord.Q,
			R:         c.coord.R,
			MassKg:    class.Mass,
			VolumeCm3: class.Volume,
		})
	}
	sort.Slice(plots, func(i, j int) bool {
		if plots[i].R != plots[j].R {
			return plots[i].R < plots[j].R
		}
		return plots[i].Q < plots[j].Q
	})

	// Stations go on fruit-free cells close to the fruit mass, spread apart.
	// The minimum separation relaxes until enough stations fit.
	stnCands := make([]scoredCell, 0, numCells-numPlots)
	for _, c := range cells {
		if _, isPlot := plotSet[c.coord]; isPlot {
			continue
		}
		prox := 0.0
		for _, p := range plots {
			prox += 1.0 / (1.0 + float64(Distance(c.coord, HexCoord{Q: p.Q, R: p.R})))
		}
		stnCands = append(stnCands, scoredCell{coord: c.coord, score: prox})
	}
	sortScoredDesc(stnCands)

	minDist := cfg.Radius / 2
	if minDist < 2 {
		minDist = 2
	}
	var stations []HexCoord
	placed := make(map[HexCoord]struct{})
	for ; minDist >= 0 && len(stations) < cfg.Stations; minDist-- {
		for _, c := range stnCands {
			if len(stations) >= cfg.Stations {
				break
			}
			if _, done := placed[c.coord]; done {
				continue
			}
			if tooClose(c.coord, stations, minDist) {
				continue
			}
			placed[c.coord] = struct{}{}
			stations = append(stations, c.coord)
		}
	}

	return &Config{
		Radius:   cfg.Radius,
		Start:    start,
		Basket:   BasketConfig{MaxMassKg: cfg.MaxMassKg, MaxVolumeCm3: cfg.MaxVolumeCm3},
		Stations: stations,
		Plots:    plots,
	}
}

// scoredCell is a grid cell with its noise samples, used while selecting
// plot and station sites.
type scoredCell struct {
	coord HexCoord
	score float64
	size  float64
}

// classIndex maps a normalized noise sample to a plot class.
func classIndex(size float64) int {
	idx := int(size * float64(len(plotClasses)))
	if idx >= len(plotClasses) {
		idx = len(plotClasses) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// sortScoredDesc orders by score descending with a (r, q) tie-break so equal
// scores cannot reorder between runs.
func sortScoredDesc(cands []scoredCell) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].coord.R != cands[j].coord.R {
			return cands[i].coord.R < cands[j].coord.R
		}
		return cands[i].coord.Q < cands[j].coord.Q
	})
}

func tooClose(coord HexCoord, existing []HexCoord, minDist int) bool {
	for _, s := range existing {
		if Distance(coord, s) < minDist {
			return true
		}
	}
	return false
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
