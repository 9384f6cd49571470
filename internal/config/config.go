// Package config loads edge-mse settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultImages is the selection list processed when neither EDGE_MSE_IMAGES
// nor command-line paths are given.
var DefaultImages = []string{
	"landscape_grayscale_Gauss_std15_mean_filter.png",
	"landscape_grayscale_SP_5pct_mean_filter.png",
	"portrait_grayscale_Gauss_std15_mean_filter.png",
	"portrait_grayscale_SP_5pct_mean_filter.png",
}

// Config holds the runtime settings.
type Config struct {
	// InputDir is joined with every relative entry of Images.
	InputDir string
	// OutputDir receives the edge images.
	OutputDir string
	// Images is the ordered selection list.
	Images []string

	LogLevel  string
	LogFormat string
	// Report is "table" or "json".
	Report string
	// AutoOrient applies EXIF orientation while decoding.
	AutoOrient bool
}

// LoadFromEnv builds a Config from EDGE_MSE_* environment variables, falling
// back to defaults, and validates it.
func LoadFromEnv() (*Config, error) {
	inputDir := getEnvOrDefault("EDGE_MSE_INPUT_DIR", "output_images")
	cfg := &Config{
		InputDir:   inputDir,
		OutputDir:  getEnvOrDefault("EDGE_MSE_OUTPUT_DIR", filepath.Join(inputDir, "segmentation_results")),
		Images:     parseListOrDefault("EDGE_MSE_IMAGES", DefaultImages),
		LogLevel:   strings.ToLower(getEnvOrDefault("EDGE_MSE_LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnvOrDefault("EDGE_MSE_LOG_FORMAT", "console")),
		Report:     strings.ToLower(getEnvOrDefault("EDGE_MSE_REPORT", "table")),
		AutoOrient: parseBoolOrDefault("EDGE_MSE_AUTO_ORIENT", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and required paths.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid EDGE_MSE_LOG_LEVEL: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid EDGE_MSE_LOG_FORMAT: %q", c.LogFormat)
	}
	switch c.Report {
	case "table", "json":
	default:
		return fmt.Errorf("invalid EDGE_MSE_REPORT: %q", c.Report)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// InputPaths resolves the selection list against InputDir. Absolute entries
// are kept as-is.
func (c *Config) InputPaths() []string {
	paths := make([]string, 0, len(c.Images))
	for _, name := range c.Images {
		if filepath.IsAbs(name) {
			paths = append(paths, name)
			continue
		}
		paths = append(paths, filepath.Join(c.InputDir, name))
	}
	return paths
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return append([]string(nil), defaultValue...)
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
