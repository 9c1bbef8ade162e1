package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/sherpalabs/scout/internal/sampleplayers"
	"github.com/sherpalabs/scout/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumPlayers = 500
	defaultWorkersMul = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8090", "Base URL of the service")
		numPlayers = flag.Int("players", defaultNumPlayers, "Number of players to generate and submit")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkersMul, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &sampleplayers.Config{
		BaseURL:    *baseURL,
		NumPlayers: *numPlayers,
		Workers:    *workers,
		Timeout:    *timeout,
		Verbose:    *verbose,
	}

	stats, err := sampleplayers.Run(ctx, cfg)
	if err != nil {
		logger.Get().Error(ctx, "run failed", logger.Error(err))
		os.Exit(1)
	}
	if stats.Failed > 0 || stats.Invalid > 0 {
		os.Exit(1)
	}
}
