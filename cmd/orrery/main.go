// Package main is the entry point for the Orrery solar system viewer.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
)

// exitInitFailure is returned when the config, logger, window, context or
// scene cannot be set up.
const exitInitFailure = 255

func main() {
	config.ParseFlags()
	os.Exit(run(os.Stdout))
}

// run starts the viewer and returns the process exit status.
func run(out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitInitFailure
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitInitFailure
	}
	defer logger.Sync()

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, out)
	if err != nil {
		logger.Error("failed to initialize viewer", zap.Error(err))
		return exitInitFailure
	}
	defer a.Close()

	a.Run()
	logger.Info("viewer closed normally")
	return 0
}
