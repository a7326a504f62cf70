// Package config defines the CLI structure and configuration for VPAD.
package config

import (
	"github.com/Alia5/VPAD/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"VPAD_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"VPAD_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Path to an explicit config file" env:"VPAD_CONFIG"`

	Run cmd.Run `cmd:"" help:"Create a virtual game controller"`
}
