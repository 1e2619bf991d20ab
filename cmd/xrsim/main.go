package main

import (
	"flag"
	"fmt"
	"os"

	"xrbody/internal/config"
	"xrbody/internal/sim"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (built-in defaults when empty)")
	scenePath := flag.String("scene", "", "override the scene file from the config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xrsim: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	logger := buildLogger(cfg.Logging.Level)
	defer logger.Sync()

	s, err := sim.New(cfg, logger)
	if err != nil {
		logger.Fatal("simulation setup failed", zap.Error(err))
	}
	s.Run()
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xrsim: logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
