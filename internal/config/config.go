package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"calnote/internal/calendar"
	"calnote/internal/notes"
)

// ErrInvalidConfig wraps every validation failure from Load
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "CALNOTE"

// Config holds the unified application configuration
type Config struct {
	Bounds       calendar.Bounds
	WeekStart    time.Weekday
	ExportDir    string
	ExportFormat notes.Format
	LogDir       string
	StrictTitles bool
	ConfigFile   string // file the settings were read from, empty if none
}

// Settings represents the config file structure
type Settings struct {
	MinDate      string `yaml:"min_date"`
	MaxDate      string `yaml:"max_date"`
	WeekStart    string `yaml:"week_start"`
	ExportDir    string `yaml:"export_dir"`
	ExportFormat string `yaml:"export_format"`
	LogDir       string `yaml:"log_dir,omitempty"`
	StrictTitles bool   `yaml:"strict_titles"`
}

// CLIFlags holds parsed CLI flags. Empty strings and nil mean "not set".
type CLIFlags struct {
	ConfigFile   string
	MinDate      string
	MaxDate      string
	WeekStart    string
	ExportDir    string
	ExportFormat string
	LogDir       string
	StrictTitles *bool
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		MinDate:      calendar.DefaultMin.Key(),
		MaxDate:      calendar.DefaultMax.Key(),
		WeekStart:    strings.ToLower(calendar.DefaultWeekStart.String()),
		ExportDir:    "~/calnote",
		ExportFormat: string(notes.FormatMarkdown),
	}
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("min_date", defaults.MinDate)
	v.SetDefault("max_date", defaults.MaxDate)
	v.SetDefault("week_start", defaults.WeekStart)
	v.SetDefault("export_dir", defaults.ExportDir)
	v.SetDefault("export_format", defaults.ExportFormat)
	v.SetDefault("log_dir", defaults.LogDir)
	v.SetDefault("strict_titles", defaults.StrictTitles)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags.ConfigFile != "" {
		path, err := homedir.Expand(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := getConfigDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// CLI flags override everything
	setIfNotEmpty(v, "min_date", flags.MinDate)
	setIfNotEmpty(v, "max_date", flags.MaxDate)
	setIfNotEmpty(v, "week_start", flags.WeekStart)
	setIfNotEmpty(v, "export_dir", flags.ExportDir)
	setIfNotEmpty(v, "export_format", flags.ExportFormat)
	setIfNotEmpty(v, "log_dir", flags.LogDir)
	if flags.StrictTitles != nil {
		v.Set("strict_titles", *flags.StrictTitles)
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setIfNotEmpty(v *viper.Viper, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func fromViper(v *viper.Viper) (*Config, error) {
	minDate, err := calendar.ParseKey(v.GetString("min_date"))
	if err != nil {
		return nil, fmt.Errorf("%w: min_date: %v", ErrInvalidConfig, err)
	}
	maxDate, err := calendar.ParseKey(v.GetString("max_date"))
	if err != nil {
		return nil, fmt.Errorf("%w: max_date: %v", ErrInvalidConfig, err)
	}
	bounds := calendar.Bounds{Min: minDate, Max: maxDate}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	weekStart, err := calendar.ParseWeekday(v.GetString("week_start"))
	if err != nil {
		return nil, fmt.Errorf("%w: week_start: %v", ErrInvalidConfig, err)
	}

	format, err := notes.ParseFormat(v.GetString("export_format"))
	if err != nil {
		return nil, fmt.Errorf("%w: export_format: %v", ErrInvalidConfig, err)
	}

	exportDir, err := homedir.Expand(v.GetString("export_dir"))
	if err != nil {
		return nil, fmt.Errorf("%w: export_dir: %v", ErrInvalidConfig, err)
	}
	logDir, err := homedir.Expand(v.GetString("log_dir"))
	if err != nil {
		return nil, fmt.Errorf("%w: log_dir: %v", ErrInvalidConfig, err)
	}

	return &Config{
		Bounds:       bounds,
		WeekStart:    weekStart,
		ExportDir:    exportDir,
		ExportFormat: format,
		LogDir:       logDir,
		StrictTitles: v.GetBool("strict_titles"),
		ConfigFile:   v.ConfigFileUsed(),
	}, nil
}

// Calculator builds the grid calculator described by the config
func (c *Config) Calculator() calendar.Calculator {
	return calendar.NewCalculator(c.Bounds, c.WeekStart)
}

// getConfigDir returns the directory holding config.yaml
func getConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "calnote"), nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	dir, err := getConfigDir()
	if err != nil {
		return err
	}

	for _, ext := range viper.SupportedExts {
		if _, err := os.Stat(filepath.Join(dir, "config."+ext)); err == nil {
			return nil
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(DefaultSettings())
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}
