package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFile = "sticker-goblin.toml"
	DefaultEnvFile    = ".env"
)

// Environment variables
const (
	EnvConfigPath  = "STICKER_GOBLIN_CONFIG"
	EnvCatalogPath = "STICKER_GOBLIN_CATALOG"
	EnvAssetsDir   = "STICKER_GOBLIN_ASSETS"
	EnvTieMode     = "STICKER_GOBLIN_TIE_MODE"
	EnvVowelSource = "STICKER_GOBLIN_VOWELS"
	EnvSeed        = "STICKER_GOBLIN_SEED"
	EnvJSONLogs    = "STICKER_GOBLIN_JSON_LOGS"
	EnvLogLevel    = "LOG_LEVEL"
)

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the application configuration
type Config struct {
	Catalog   CatalogConfig   `toml:"catalog"`
	Draw      DrawConfig      `toml:"draw"`
	Animation AnimationConfig `toml:"animation"`
	Thumbnail ThumbnailConfig `toml:"thumbnail"`
	Window    WindowConfig    `toml:"window"`
	Log       LogConfig       `toml:"log"`
}

// CatalogConfig locates the sticker data
type CatalogConfig struct {
	Path      string `toml:"path"`
	AssetsDir string `toml:"assets_dir"`
}

// DrawConfig selects draw behaviour
type DrawConfig struct {
	TieMode     string `toml:"tie_mode"`
	VowelSource string `toml:"vowel_source"`
	Seed        uint64 `toml:"seed"`
}

// AnimationConfig controls the shuffle animation
type AnimationConfig struct {
	Frames  int `toml:"frames"`
	DelayMS int `toml:"delay_ms"`
}

// ThumbnailConfig bounds decoded sheet images
type ThumbnailConfig struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// WindowConfig sizes the main window
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// LogConfig controls logging output
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "data.json",
		},
		Draw: DrawConfig{
			TieMode:     models.TieReport.String(),
			VowelSource: models.VowelsRecorded.String(),
		},
		Animation: AnimationConfig{
			Frames:  14,
			DelayMS: 35,
		},
		Thumbnail: ThumbnailConfig{
			MaxWidth:  500,
			MaxHeight: 300,
		},
		Window: WindowConfig{
			Width:  940,
			Height: 560,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path (or
// the default location), a .env file and the environment, in increasing
// precedence. Missing files are not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCatalogPath); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		c.Catalog.AssetsDir = v
	}
	if v := os.Getenv(EnvTieMode); v != "" {
		c.Draw.TieMode = v
	}
	if v := os.Getenv(EnvVowelSource); v != "" {
		c.Draw.VowelSource = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalid, EnvSeed, v)
		}
		c.Draw.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	} else if os.Getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}
	if v := os.Getenv(EnvJSONLogs); v != "" {
		c.Log.JSON = strings.EqualFold(v, "true") || v == "1"
	}
	return nil
}

// Validate checks every field that has a restricted domain
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Catalog.Path) == "" {
		problems = append(problems, "catalog.path is empty")
	}
	if _, err := models.ParseTieMode(c.Draw.TieMode); err != nil {
		problems = append(problems, "draw.tie_mode: "+err.Error())
	}
	if _, err := models.ParseVowelSource(c.Draw.VowelSource); err != nil {
		problems = append(problems, "draw.vowel_source: "+err.Error())
	}
	if c.Animation.Frames <= 0 {
		problems = append(problems, "animation.frames must be positive")
	}
	if c.Animation.DelayMS < 0 {
		problems = append(problems, "animation.delay_ms must not be negative")
	}
	if c.Thumbnail.MaxWidth <= 0 || c.Thumbnail.MaxHeight <= 0 {
		problems = append(problems, "thumbnail bounds must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window size must be positive")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// TieMode returns the parsed tie mode; Validate must have passed
func (c *Config) TieMode() models.TieMode {
	mode, _ := models.ParseTieMode(c.Draw.TieMode)
	return mode
}

// VowelSource returns the parsed vowel source; Validate must have passed
func (c *Config) VowelSource() models.VowelSource {
	source, _ := models.ParseVowelSource(c.Draw.VowelSource)
	return source
}

// LogLevel returns the parsed log level; Validate must have passed
func (c *Config) LogLevel() logger.LogLevel {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// FrameDelay is the pause between animation frames
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Animation.DelayMS) * time.Millisecond
}

// ThumbnailBounds returns the display box for sheet images
func (c *Config) ThumbnailBounds() models.ThumbnailBounds {
	return models.ThumbnailBounds{MaxWidth: c.Thumbnail.MaxWidth, MaxHeight: c.Thumbnail.MaxHeight}
}

// ResolveAsset turns an image reference from the catalog into a file path.
// Relative references resolve against AssetsDir, or the catalog's own
// directory when AssetsDir is unset.
func (c *Config) ResolveAsset(ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	base := c.Catalog.AssetsDir
	if base == "" {
		base = filepath.Dir(c.Catalog.Path)
	}
	return filepath.Join(base, filepath.FromSlash(ref))
}
