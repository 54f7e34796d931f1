// Package config handles the configuration for the cow demo
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/AdrianWangs/go-cow/pkg/logger"
)

// Config represents the demo configuration
type Config struct {
	// Whitespace removal input
	Text string `json:"text" toml:"text"`

	// Borrowed user names
	FirstName string `json:"first_name" toml:"first_name"`
	LastName  string `json:"last_name" toml:"last_name"`

	// Lazy buffer settings
	BufferSize int     `json:"buffer_size" toml:"buffer_size"`
	Appends    [][]int `json:"appends" toml:"appends"`

	// Output settings
	Color     string `json:"color" toml:"color"`
	LogLevel  string `json:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" toml:"log_format"`
}

// DefaultConfig returns the values the walk-through uses out of the box
func DefaultConfig() *Config {
	return &Config{
		Text:       "Hello world",
		FirstName:  "Eve",
		LastName:   "Monepenny",
		BufferSize: 10,
		Appends:    [][]int{{1, 2, 3}, {4, 5, 6}},
		Color:      "auto",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadFromFile loads configuration from a TOML or JSON file, chosen by
// extension. Keys missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return config, WrapError("file", "decode toml "+path, err)
		}
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return config, WrapError("file", "read "+path, err)
	}

	if err := json.Unmarshal(file, config); err != nil {
		return config, WrapError("file", "decode json "+path, err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from COWDEMO_* environment variables
func LoadFromEnv() *Config {
	config := DefaultConfig()
	config.ApplyEnv()
	return config
}

// ApplyEnv overrides fields with any COWDEMO_* variables that are set
func (c *Config) ApplyEnv() {
	if val, ok := os.LookupEnv("COWDEMO_TEXT"); ok {
		c.Text = val
	}

	if val := os.Getenv("COWDEMO_FIRST_NAME"); val != "" {
		c.FirstName = val
	}

	if val := os.Getenv("COWDEMO_LAST_NAME"); val != "" {
		c.LastName = val
	}

	if val := os.Getenv("COWDEMO_BUFFER_SIZE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			c.BufferSize = parsed
		} else {
			logger.Warnf("ignoring COWDEMO_BUFFER_SIZE=%q: %v", val, err)
		}
	}

	if val := os.Getenv("COWDEMO_COLOR"); val != "" {
		c.Color = val
	}

	// Logging settings
	if val := os.Getenv("COWDEMO_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv("COWDEMO_LOG_FORMAT"); val != "" {
		c.LogFormat = val
	}
}

// Validate checks every field and returns the first problem found
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return NewError("buffer_size", "must not be negative: "+strconv.Itoa(c.BufferSize))
	}
	if _, err := c.AppendBytes(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return NewError("color", "want auto, on or off, got "+strconv.Quote(c.Color))
	}
	if !logger.ValidLevel(c.LogLevel) {
		return NewError("log_level", "unknown level "+strconv.Quote(c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return NewError("log_format", "want text or json, got "+strconv.Quote(c.LogFormat))
	}
	return nil
}

// AppendBytes converts Appends to byte chunks, rejecting values outside 0..255
func (c *Config) AppendBytes() ([][]byte, error) {
	chunks := make([][]byte, 0, len(c.Appends))
	for i, chunk := range c.Appends {
		out := make([]byte, len(chunk))
		for j, v := range chunk {
			b, err := safecast.Conv[byte](v)
			if err != nil {
				return nil, WrapError("appends", "chunk "+strconv.Itoa(i)+" index "+strconv.Itoa(j), err)
			}
			out[j] = b
		}
		chunks = append(chunks, out)
	}
	return chunks, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
