package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/kiwibot/internal/farm"
	"github.com/talgya/kiwibot/internal/render"
	"github.com/talgya/kiwibot/internal/search"
)

var (
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Compute the optimal harvest route",
		Long: `Runs A* over the farm and prints the cheapest plan that harvests every
plot and leaves the basket empty at a collection station.`,
		Run: runSolve,
	}
	solveStartQ  int
	solveStartR  int
	solveMaxExp  int
	solveShowMap bool
	solveNoColor bool
)

func init() {
	solveCmd.Flags().IntVar(&solveStartQ, "start-q", 0, "override the start q coordinate")
	solveCmd.Flags().IntVar(&solveStartR, "start-r", 0, "override the start r coordinate")
	solveCmd.Flags().IntVar(&solveMaxExp, "max-expansions", 0,
		"abort after this many state expansions (0 = unbounded)")
	solveCmd.Flags().BoolVar(&solveShowMap, "map", false, "draw the farm map with the route overlaid")
	solveCmd.Flags().BoolVar(&solveNoColor, "no-color", false, "plain ASCII output")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) {
	f, err := loadFarm()
	if err != nil {
		exitErr(err)
	}

	start := f.Start
	if cmd.Flags().Changed("start-q") || cmd.Flags().Changed("start-r") {
		start = farm.HexCoord{Q: solveStartQ, R: solveStartR}
	}

	slog.Info("solving", "farm", f.String(), "start", start.String())
	solver := &search.Solver{Farm: f, MaxExpansions: solveMaxExp}
	plan, err := solver.Solve(start)
	if err != nil {
		exitErr(err)
	}

	rd := render.New(!solveNoColor)
	fmt.Print(rd.Summary(f))
	if solveShowMap {
		fmt.Println()
		fmt.Print(rd.MapRoute(f, plan.Route()))
		fmt.Println(rd.Legend())
	}
	fmt.Println()
	fmt.Print(rd.Report(plan))
}
