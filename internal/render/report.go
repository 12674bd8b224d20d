package render

import (
	"fmt"
	"strings"

	"github.com/talgya/kiwibot/internal/farm"
	"github.com/talgya/kiwibot/internal/search"
)

// Summary returns a short multi-line description of the farm.
func (rd *Renderer) Summary(f *farm.Farm) string {
	var b strings.Builder
	b.WriteString(rd.st.Title.Render(f.String()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  start    %s\n", f.Start)
	fmt.Fprintf(&b, "  basket   %.1f kg / %.0f cm3\n", f.MaxMass, f.MaxVolume)
	fmt.Fprintf(&b, "  crop     %.1f kg / %.0f cm3 across %d plots\n",
		f.TotalMass(), f.TotalVolume(), f.NumPlots())
	fmt.Fprintf(&b, "  stations %s\n", joinCoords(f.Stations()))
	return b.String()
}

// Report returns the step-by-step plan log with totals and search stats.
func (rd *Renderer) Report(p *search.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d moves, %d harvests, %d unloads, cost %.1f\n",
		rd.st.Title.Render("plan:"), p.Moves(), p.Harvests(), p.Unloads(), p.Cost)
	fmt.Fprintf(&b, "%s %d expanded, %d generated, %d left in frontier\n",
		rd.st.Muted.Render("search:"), p.Stats.Expanded, p.Stats.Generated, p.Stats.Frontier)
	if len(p.Steps) == 0 {
		b.WriteString("  (nothing to do)\n")
		return b.String()
	}
	for i, s := range p.Steps {
		fmt.Fprintf(&b, "%3d. %-32s basket %.1f kg %.0f cm3\n",
			i+1, s.Action, s.State.Mass, s.State.Volume)
	}
	return b.String()
}

func joinCoords(cs []farm.HexCoord) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
