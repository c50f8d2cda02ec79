package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/drift/internal/app"
	"github.com/bethropolis/drift/internal/config"
	"github.com/bethropolis/drift/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	if _, err := flags.ParseFlags(fs, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, &flags)

	// --- Logger Initialization ---
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		// stderr belongs to the terminal UI.
		logPath = filepath.Join(os.TempDir(), config.DefaultLogFileName)
	}
	output, closeLog, err := logger.OpenOutput(logPath)
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, output)

	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("Log file: %s", logPath)
	if cfgErr != nil {
		logger.Errorf("Config: %v (using defaults)", cfgErr)
	}
	for _, w := range cfg.Warnings {
		logger.Warnf("Config: %s", w)
	}

	themesDir := ""
	if path := configPath(*flags.ConfigFilePath); path != "" {
		themesDir = filepath.Join(filepath.Dir(path), config.ThemesDirName)
	}

	// --- Create and Run App ---
	driftApp, err := app.NewApp(cfg, app.Options{ThemesDir: themesDir})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := driftApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

func configPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return config.DefaultPath()
}
