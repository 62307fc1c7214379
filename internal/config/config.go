package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"navdir/internal/history"
)

const (
	appDir         = "crabwalker"
	favouritesName = "fav.txt"
	historyName    = "state.txt"
	configName     = "config.yaml"
)

type TreeConfig struct {
	Depth        int  `yaml:"depth"`
	Entries      int  `yaml:"entries"`
	Hidden       bool `yaml:"hidden"`
	FollowCycles bool `yaml:"follow_cycles"`
}

type HistoryConfig struct {
	ListSize int `yaml:"list_size"`
}

type Config struct {
	StateDir string        `yaml:"state_dir"`
	Editor   string        `yaml:"editor"`
	LogLevel string        `yaml:"log_level"`
	History  HistoryConfig `yaml:"history"`
	Tree     TreeConfig    `yaml:"tree"`
}

// Paths are the state files derived from a config.
type Paths struct {
	FavouritesFile string
	HistoryFile    string
}

func DefaultConfig() *Config {
	return &Config{
		StateDir: DefaultStateDir(),
		LogLevel: "warn",
		History: HistoryConfig{
			ListSize: history.DefaultListSize,
		},
		Tree: TreeConfig{
			Depth:   3,
			Entries: 10,
		},
	}
}

// HomeDir falls back to /home/$USER when the environment gives no answer.
func HomeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return filepath.Join("/home", os.Getenv("USER"))
}

func DefaultStateDir() string {
	return filepath.Join(HomeDir(), ".config", appDir)
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultStateDir(), configName)
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults restores defaults for empty strings, a non-positive
// list_size and negative tree limits. A tree depth or entry cap of 0 is a
// valid setting and is kept.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.StateDir == "" {
		c.StateDir = defaults.StateDir
	}
	c.StateDir = expandHome(c.StateDir)

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.History.ListSize <= 0 {
		c.History.ListSize = defaults.History.ListSize
	}
	if c.Tree.Depth < 0 {
		c.Tree.Depth = defaults.Tree.Depth
	}
	if c.Tree.Entries < 0 {
		c.Tree.Entries = defaults.Tree.Entries
	}
}

func expandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}

func (c *Config) Paths() Paths {
	return Paths{
		FavouritesFile: filepath.Join(c.StateDir, favouritesName),
		HistoryFile:    filepath.Join(c.StateDir, historyName),
	}
}

// EditorCommand picks the configured editor, then $EDITOR, then nano.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "nano"
}
