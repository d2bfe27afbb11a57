// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	flagLogLevel  = "loglevel"
	flagLogFormat = "logformat"
)

// registerLoggingFlags adds --loglevel and --logformat to every command.
func registerLoggingFlags(cmd *cobra.Command) {
	enumVar(cmd.PersistentFlags(), flagLogLevel, "", []string{
		"warn",
		"debug",
		"info",
		"error",
	}, "set the log level")
	enumVar(cmd.PersistentFlags(), flagLogFormat, "", []string{"text", "json"}, "set the log format")
}

// baseLogger builds the slog logger selected by the logging flags. Records
// go to the command's error stream so they never mix with results.
func baseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevel(cmd)
	if err != nil {
		return nil, err
	}
	format, err := enumGet(cmd.Flags(), flagLogFormat)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return slog.New(handler), nil
}

func loggerLevel(cmd *cobra.Command) (slog.Level, error) {
	name, err := enumGet(cmd.Flags(), flagLogLevel)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", name)
	}
}
