package dragview

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultTouchSlop is the drag threshold used when a config does not set one.
const DefaultTouchSlop = 8.0

// Config holds the tunable settings of a Controller. It is usually decoded
// from a TOML file:
//
//	touch_slop = 8.0
//	orientation = "horizontal"
//	debug = false
type Config struct {
	TouchSlop   float64     `toml:"touch_slop"`
	Orientation Orientation `toml:"orientation"`
	Debug       bool        `toml:"debug"`
}

// DefaultConfig returns the settings a Controller uses when nothing is configured.
func DefaultConfig() Config {
	return Config{
		TouchSlop:   DefaultTouchSlop,
		Orientation: OrientationAll,
	}
}

// ParseConfig decodes TOML config data. Keys missing from data keep their
// defaults; unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("dragview: parse config: %w", err)
	}
	if err := checkDecoded(md, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("dragview: load config %s: %w", path, err)
	}
	if err := checkDecoded(md, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkDecoded(md toml.MetaData, cfg Config) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("dragview: unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate reports whether the config can build a Controller.
func (c Config) Validate() error {
	if c.TouchSlop < 0 {
		return fmt.Errorf("dragview: touch_slop must not be negative, got %v", c.TouchSlop)
	}
	return nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("dragview: write config: %w", err)
	}
	return nil
}

// NewController builds a controller for container configured from c.
func (c Config) NewController(container Container) *Controller {
	ctrl := NewController(container, c.TouchSlop)
	ctrl.SetDragOrientation(c.Orientation)
	ctrl.SetDebugMode(c.Debug)
	return ctrl
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts none,
// horizontal, vertical and all (or both), case-insensitively.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "none":
		*o = OrientationNone
	case "horizontal":
		*o = OrientationHorizontal
	case "vertical":
		*o = OrientationVertical
	case "all", "both":
		*o = OrientationAll
	default:
		return fmt.Errorf("dragview: unknown orientation %q", string(text))
	}
	return nil
}
