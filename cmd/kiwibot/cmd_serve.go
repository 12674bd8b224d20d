package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talgya/kiwibot/internal/api"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the farm and harvest plans over HTTP",
		Run:   runServe,
	}
	servePort   int
	serveMaxExp int
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port")
	serveCmd.Flags().IntVar(&serveMaxExp, "max-expansions", 0,
		"abort plan searches after this many expansions (0 = unbounded)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	f, err := loadFarm()
	if err != nil {
		exitErr(err)
	}

	srv := &api.Server{Farm: f, Port: servePort, MaxExpansions: serveMaxExp}
	srv.Start()

	fmt.Printf("kiwibot API: http://localhost:%d/api/v1/status\n", servePort)
	fmt.Println("Serving... (Ctrl+C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
