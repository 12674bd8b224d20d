package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/kiwibot/internal/render"
)

var (
	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Draw the farm map and summary",
		Run:   runRender,
	}
	renderNoColor bool
)

func init() {
	renderCmd.Flags().BoolVar(&renderNoColor, "no-color", false, "plain ASCII output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	f, err := loadFarm()
	if err != nil {
		exitErr(err)
	}

	rd := render.New(!renderNoColor)
	fmt.Print(rd.Summary(f))
	fmt.Println()
	fmt.Print(rd.Map(f))
	fmt.Println(rd.Legend())
}
