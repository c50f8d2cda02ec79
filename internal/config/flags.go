package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/drift/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	MaxHistory      *int
	Padding         *float64
	NudgeStep       *float64
	SpaceStep       *float64
	Theme           *string
	SystemClipboard *bool

	fs *flag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.MaxHistory = fs.Int("history", 0, "Maximum number of undo steps - Overrides config file")
	f.Padding = fs.Float64("padding", -1, "Gap kept when a container grows to fit a child - Overrides config file")
	f.NudgeStep = fs.Float64("nudge", 0, "Distance an arrow key moves a shape - Overrides config file")
	f.SpaceStep = fs.Float64("space", 0, "Space inserted or removed per space-tool key press - Overrides config file")
	f.Theme = fs.String("theme", "", "Theme name - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Copy element IDs to the system clipboard")
}

// ParseFlags defines the flags on fs and parses args. It returns the
// remaining non-flag arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// ApplyOverrides updates cfg with the values of flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "history":
			if *f.MaxHistory > 0 {
				cfg.History.MaxDepth = *f.MaxHistory
			}
		case "padding":
			if *f.Padding >= 0 {
				cfg.Modeling.AutoResizePadding = *f.Padding
			}
		case "nudge":
			if *f.NudgeStep > 0 {
				cfg.Canvas.NudgeStep = *f.NudgeStep
			}
		case "space":
			if *f.SpaceStep > 0 {
				cfg.Canvas.SpaceStep = *f.SpaceStep
			}
		case "theme":
			if *f.Theme != "" {
				cfg.Canvas.Theme = *f.Theme
			}
		case "system-clipboard":
			cfg.Canvas.SystemClipboard = *f.SystemClipboard
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
