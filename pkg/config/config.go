// Binaries are configured with command line flags and an optional YAML config file.
// The config file holds values for the same flags: every leaf key is a flag name, and nested mappings only group
// related flags together. Values from the config file override the command line.

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var configFilePath = flag.String("config_file", "", "Path to the YAML configuration file.")

// InitFlags initializes the flags from the config file specified by the -config_file flag.
// It should be called after defining all flags and before using them.
// Assumes config file doesn't have sequences. Supports nested mappings only.
func InitFlags() {
	flag.Parse()

	if *configFilePath == "" {
		slog.Debug("Config file not specified. Skipping config initialization.")
		return
	}

	// Read config file.
	configFile, err := os.Open(*configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Config file does not exist.", "path", *configFilePath, "error", err)
		return
	}
	if err != nil { // If the config file cannot be opened, we skip loading and use default flag values.
		slog.Error("Failed to open config file.", "error", err)
		return
	}
	configBytes, err := io.ReadAll(configFile)
	if err != nil {
		slog.Error("Failed to read config file.", "error", err)
		return
	}
	_ = configFile.Close()

	// Apply configurations.
	if err := ApplyConfig(configBytes); err != nil {
		slog.Error("Failed to set flags from config file.", "path", *configFilePath, "error", err)
		return
	}
}

// ApplyConfig sets all the flags filled in the given YAML document to the global flag variables.
func ApplyConfig(configBytes []byte) error {
	configFlags, err := parseConfig(configBytes)
	if err != nil {
		return err
	}
	for flagName, flagValue := range configFlags {
		if setErr := flag.Set(flagName, flagValue); setErr != nil {
			return fmt.Errorf("failed to set flag %s: %w", flagName, setErr)
		}
	}
	return nil
}
