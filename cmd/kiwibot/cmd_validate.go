package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/kiwibot/internal/farm"
)

var validateCmd = &cobra.Command{
	Use:   "validate [farm.yaml]",
	Short: "Check a farm file against the schema and semantic rules",
	Args:  cobra.MaximumNArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	path := farmPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		exitErr(errors.New("validate needs a farm file (argument or --farm)"))
	}

	cfg, err := farm.LoadConfig(path)
	if err != nil {
		exitErr(err)
	}
	f, err := farm.New(cfg)
	if err != nil {
		exitErr(err)
	}
	fmt.Printf("%s: ok, %s\n", path, f)
}
