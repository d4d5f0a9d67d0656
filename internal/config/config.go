package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	UI          UIConfig          `mapstructure:"ui"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
	Terminal    TerminalConfig    `mapstructure:"terminal"`
}

// GameConfig selects the board a new session starts with
type GameConfig struct {
	// Preset is beginner, intermediate, expert or custom
	Preset string `mapstructure:"preset"`
	// Width, Height and Mines are only read for the custom preset
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Mines  int `mapstructure:"mines"`
	// Seed makes mine placement reproducible; 0 uses the OS entropy source
	Seed int64 `mapstructure:"seed"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
}

// WindowConfig holds window settings. The window size follows the board.
type WindowConfig struct {
	Title string `mapstructure:"title"`
}

// UIGameConfig holds board layout settings
type UIGameConfig struct {
	TileSize     int `mapstructure:"tile_size"`
	Margin       int `mapstructure:"margin"`
	HeaderHeight int `mapstructure:"header_height"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	ShowMines      bool `mapstructure:"show_mines"`
}

// TerminalConfig holds settings for the terminal client
type TerminalConfig struct {
	HistoryFile string `mapstructure:"history_file"`
	Prompt      string `mapstructure:"prompt"`
}

const maxBoardDimension = 1000

var knownPresets = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"expert":       true,
	"custom":       true,
}

var (
	// Global config instance; mu guards cfg against the watcher goroutine
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper

	// overlay is the environment file merged over the base config
	overlay string
)

func setConfig(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.preset", "beginner")
	v.SetDefault("game.width", 9)
	v.SetDefault("game.height", 9)
	v.SetDefault("game.mines", 10)
	v.SetDefault("game.seed", 0)

	// UI defaults
	v.SetDefault("ui.window.title", "Minesweeper")
	v.SetDefault("ui.game.tile_size", 24)
	v.SetDefault("ui.game.margin", 8)
	v.SetDefault("ui.game.header_height", 40)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_mines", false)

	// Terminal defaults
	v.SetDefault("terminal.history_file", ".sweep_history")
	v.SetDefault("terminal.prompt", "sweep> ")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	overlay = ""

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/minesweeper")
	}

	// MSW_GAME_PRESET overrides game.preset, and so on
	v.SetEnvPrefix("MSW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	setConfig(loaded)

	return nil
}

// Get returns the global config instance. The returned value is replaced,
// never modified, when the config changes.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml, found next to the loaded
// config file, over the loaded config. A missing file is not an error. The
// base file stays the one WatchConfig follows; the overlay is merged again
// on every reload but edits to it are not watched.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	dir := "."
	if used := v.ConfigFileUsed(); used != "" {
		dir = filepath.Dir(used)
	}
	overlay = filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))

	merged, err := mergeOverlay()
	if err != nil {
		return err
	}
	setConfig(merged)

	return nil
}

// mergeOverlay merges the environment file, if any, into v and decodes the
// result. The overlay is read through its own viper instance so that the
// file v reads and watches does not change.
func mergeOverlay() (*Config, error) {
	if overlay != "" {
		ov := viper.New()
		ov.SetConfigFile(overlay)
		err := ov.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
			if err := v.MergeConfigMap(ov.AllSettings()); err != nil {
				return nil, fmt.Errorf("error merging environment config %s: %w", overlay, err)
			}
		case errors.Is(err, fs.ErrNotExist), errors.As(err, &notFound):
		default:
			return nil, fmt.Errorf("error reading environment config %s: %w", overlay, err)
		}
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return nil, fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return merged, nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return err
	}
	setConfig(next)
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the base config file when it changes, merging the
// environment overlay again. onChange receives the new config once it has
// passed validation and Get returns it; invalid edits are reported through
// onError and the previous config stays active. Callbacks run on the
// watcher goroutine.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next, err := mergeOverlay()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		setConfig(next)
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// LogLevel returns the configured zerolog level, raised to debug when
// verbose logging is on.
func (c *Config) LogLevel() zerolog.Level {
	if c.Development.VerboseLogging {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Validate validates the configuration values
func Validate(c *Config) error {
	preset := strings.ToLower(c.Game.Preset)
	if !knownPresets[preset] {
		return fmt.Errorf("game.preset must be one of beginner, intermediate, expert, custom; got %q", c.Game.Preset)
	}
	if preset == "custom" {
		if c.Game.Width < 1 || c.Game.Width > maxBoardDimension {
			return fmt.Errorf("game.width must be between 1 and %d", maxBoardDimension)
		}
		if c.Game.Height < 1 || c.Game.Height > maxBoardDimension {
			return fmt.Errorf("game.height must be between 1 and %d", maxBoardDimension)
		}
		if c.Game.Mines < 1 || c.Game.Mines > maxBoardDimension {
			return fmt.Errorf("game.mines must be between 1 and %d", maxBoardDimension)
		}
	}

	if c.UI.Game.TileSize < 8 {
		return fmt.Errorf("ui.game.tile_size must be at least 8")
	}
	if c.UI.Game.Margin < 0 {
		return fmt.Errorf("ui.game.margin must be non-negative")
	}
	if c.UI.Game.HeaderHeight < 0 {
		return fmt.Errorf("ui.game.header_height must be non-negative")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json; got %q", c.Logging.Format)
	}

	return nil
}
