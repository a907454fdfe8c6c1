package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hostplay/input-bridge/internal/input"
)

// Config holds all configuration for the application
type Config struct {
	Input InputConfig
}

// InputConfig holds input-layer configuration
type InputConfig struct {
	// ControllerType is the catalog identifier requested at startup
	ControllerType string

	// EnableKeyboard bridges the physical keyboard into the controller
	EnableKeyboard bool

	// KeyboardDevice is the input device node to read key events from
	KeyboardDevice string

	// GrabKeyboard claims the device exclusively at startup
	GrabKeyboard bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Input: InputConfig{
			ControllerType: getEnvOrDefault("INPUT_CONTROLLER_TYPE", "FourButtons"),
			EnableKeyboard: getEnvAsBoolOrDefault("INPUT_ENABLE_KEYBOARD", true),
			KeyboardDevice: getEnvOrDefault("INPUT_KEYBOARD_DEVICE", "/dev/input/event0"),
			GrabKeyboard:   getEnvAsBoolOrDefault("INPUT_GRAB_KEYBOARD", false),
		},
	}

	if !input.Supported(input.Type(cfg.Input.ControllerType)) {
		return nil, fmt.Errorf("INPUT_CONTROLLER_TYPE %q is not a supported controller type", cfg.Input.ControllerType)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
