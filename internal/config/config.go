// Package config loads the INI settings file, creating it with
// commented defaults on first run. A config that cannot be read or is
// missing keys is fatal before any timecard access.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"punchclock/internal/data/aggregator"
)

// DefaultINI is written verbatim on first run and shown in the fatal
// diagnostic when the config is broken.
const DefaultINI = `[Settings]

# Location where data files are stored.
recordsFolder = ~/.local/share/punchclock/

# If set to true, time on break is included as time worked.
include_break = false

# Default number of minutes to be used with --break.
default_break = 30

# Number of hours that should be worked in a day.
target_hours = 8

# Number of days that should be worked in a week.
target_days = 5

# Color scale order is defined here. 10th element (index 9) will line up with target.
# This must be a list of 15 colors. A copy of the default follows:
# color_order = light_black,white,light_white,magenta,blue,light_blue,light_cyan,cyan,green,light_green,light_yellow,yellow,light_red,red,red
color_order = light_black,white,light_white,magenta,blue,light_blue,light_cyan,cyan,green,light_green,light_yellow,yellow,light_red,red,red
`

// padColour fills out a short colour list.
const padColour = "light_black"

type Config struct {
	RecordsFolder string
	IncludeBreak  bool
	DefaultBreak  int
	TargetHours   int
	TargetDays    int
	ColorOrder    []string
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(expandHome("~/.config/punchclock"), "punchclock.ini")
}

// Load reads the config at path, writing the default file first when
// none exists.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(DefaultINI), 0644); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file failed: %w", err)
	}

	section := file.Section("Settings")
	for _, key := range []string{"recordsFolder", "include_break", "default_break", "target_hours", "target_days", "color_order"} {
		if !section.HasKey(key) {
			return nil, fmt.Errorf("missing value %q in %s", key, path)
		}
	}

	cfg := &Config{
		RecordsFolder: expandHome(section.Key("recordsFolder").String()),
	}
	if cfg.IncludeBreak, err = section.Key("include_break").Bool(); err != nil {
		return nil, fmt.Errorf("bad include_break: %w", err)
	}
	if cfg.DefaultBreak, err = section.Key("default_break").Int(); err != nil {
		return nil, fmt.Errorf("bad default_break: %w", err)
	}
	if cfg.TargetHours, err = section.Key("target_hours").Int(); err != nil {
		return nil, fmt.Errorf("bad target_hours: %w", err)
	}
	if cfg.TargetDays, err = section.Key("target_days").Int(); err != nil {
		return nil, fmt.Errorf("bad target_days: %w", err)
	}

	for _, name := range strings.Split(section.Key("color_order").String(), ",") {
		cfg.ColorOrder = append(cfg.ColorOrder, strings.TrimSpace(name))
	}
	for len(cfg.ColorOrder) < aggregator.Buckets {
		cfg.ColorOrder = append(cfg.ColorOrder, padColour)
	}
	cfg.ColorOrder = cfg.ColorOrder[:aggregator.Buckets]

	return cfg, nil
}

// TimecardPath is the JSON store location under the records folder.
func (c *Config) TimecardPath() string {
	return filepath.Join(c.RecordsFolder, "timecard.json")
}

// TimelogPath is the append-only log location under the records folder.
func (c *Config) TimelogPath() string {
	return filepath.Join(c.RecordsFolder, "timelog.txt")
}

// AppLogPath is where the structured application log is written.
func (c *Config) AppLogPath() string {
	return filepath.Join(c.RecordsFolder, "punchclock.log")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
