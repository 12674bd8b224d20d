package render

import (
	"strconv"
	"strings"

	"github.com/talgya/kiwibot/internal/farm"

	"github.com/charmbracelet/lipgloss"
)

// Map renders the farm grid, one row of cells per r coordinate with north
// at the top. Rows are offset by half a cell per step in r so the axial
// grid reads as a hexagon.
func (rd *Renderer) Map(f *farm.Farm) string {
	return rd.MapRoute(f, nil)
}

// MapRoute renders the farm grid with a route overlay. Ground cells on
// the route are marked o; plot and station cells keep their glyph.
func (rd *Renderer) MapRoute(f *farm.Farm, route []farm.HexCoord) string {
	onRoute := make(map[farm.HexCoord]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}

	var b strings.Builder
	for r := -f.Radius; r <= f.Radius; r++ {
		qmin, qmax := rowSpan(f.Radius, r)
		cells := make([]string, 0, qmax-qmin+1)
		for q := qmin; q <= qmax; q++ {
			cells = append(cells, rd.cell(f, farm.HexCoord{Q: q, R: r}, onRoute))
		}
		b.WriteString(strings.Repeat(" ", 2*abs(r)))
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend returns a one-line key for the map glyphs.
func (rd *Renderer) Legend() string {
	return rd.st.Muted.Render("@ start   S station   1-9 plot mass (kg)   . ground   o route")
}

// rowSpan returns the inclusive q range of row r inside the given radius.
func rowSpan(radius, r int) (qmin, qmax int) {
	qmin = -radius
	if -radius-r > qmin {
		qmin = -radius - r
	}
	qmax = radius
	if radius-r < qmax {
		qmax = radius - r
	}
	return qmin, qmax
}

func (rd *Renderer) cell(f *farm.Farm, c farm.HexCoord, onRoute map[farm.HexCoord]bool) string {
	var glyph string
	var st lipgloss.Style
	switch p, ok := f.PlotAt(c); {
	case f.IsStation(c):
		glyph, st = "S", rd.st.Station
	case ok:
		glyph, st = plotGlyph(p.Mass), rd.st.Plot
	case c == f.Start:
		glyph, st = "@", rd.st.Start
	default:
		glyph, st = ".", rd.st.Ground
	}
	if onRoute[c] {
		if glyph == "." {
			glyph = "o"
		}
		st = rd.st.Route
	}
	return " " + st.Render(glyph) + " "
}

// plotGlyph is the single-digit mass of the plot, or K when the mass does
// not fit in one digit.
func plotGlyph(mass float64) string {
	kg := int(mass)
	if float64(kg) == mass && kg >= 1 && kg <= 9 {
		return strconv.Itoa(kg)
	}
	return "K"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
