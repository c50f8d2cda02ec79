package config

import "time"

// Base application details
const AppName = "drift"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "drift.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Defaults for NewDefaultConfig
const DefaultMaxHistory = 100
const DefaultAutoResizePadding = 2
const DefaultNudgeStep = 1
const DefaultBigNudgeStep = 5
const DefaultSpaceStep = 2
const DefaultTheme = "drift dark"
const SystemClipboard = true
