package app

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Scale    int               `json:"scale"`
	TPS      int               `json:"tps"`
	Seed     int64             `json:"seed"`
	Brush    int               `json:"brush"`
	HUDWidth int               `json:"hud_width"`
	LogLevel string            `json:"log_level"`
	Rules    map[string]string `json:"rules"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    300,
		Height:   200,
		Scale:    3,
		TPS:      60,
		Seed:     1337,
		HUDWidth: 180,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Brush, "brush", c.Brush, "placement brush radius in cells")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// Parse binds c to fs and parses args. When -config names a file, its values
// are loaded first and flags given explicitly on the command line still win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Parse] invalid flags")
	}
	if c.File == "" {
		return c.Validate()
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Parse] invalid flags")
	}
	return c.Validate()
}

// LoadFile overlays the JSON file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate rejects dimensions the hosts cannot work with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Brush < 0 {
		c.Brush = 0
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	return nil
}

// SimOptions returns the flag-style map understood by sand.FromMap.
func (c *Config) SimOptions() map[string]string {
	opts := make(map[string]string, len(c.Rules)+3)
	for k, v := range c.Rules {
		opts[k] = v
	}
	opts["w"] = strconv.Itoa(c.Width)
	opts["h"] = strconv.Itoa(c.Height)
	opts["seed"] = strconv.FormatInt(c.Seed, 10)
	return opts
}

// Logger builds a text slog.Logger at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(c.LogLevel)}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
