package zoompan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxZoomOut = 0.2
	DefaultZoomSpeed  = 0.05
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the user adjustable behaviour of a Controller.
//
// MaxZoomOut is the scale floor below which zooming out is refused and
// ZoomSpeed is the scale increment applied per wheel notch. Both lie in (0, 1].
type Config struct {
	MaxZoomOut  float64 `yaml:"max_zoom_out"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	ZoomEnabled bool    `yaml:"zoom_enabled"`
	PanEnabled  bool    `yaml:"pan_enabled"`
}

func DefaultConfig() Config {
	return Config{
		MaxZoomOut:  DefaultMaxZoomOut,
		ZoomSpeed:   DefaultZoomSpeed,
		ZoomEnabled: true,
		PanEnabled:  true,
	}
}

func (c Config) Validate() error {
	if !(c.MaxZoomOut > 0 && c.MaxZoomOut <= 1) {
		return fmt.Errorf("%w: max zoom out %v is not in (0, 1]", ErrInvalidConfig, c.MaxZoomOut)
	}
	if !(c.ZoomSpeed > 0 && c.ZoomSpeed <= 1) {
		return fmt.Errorf("%w: zoom speed %v is not in (0, 1]", ErrInvalidConfig, c.ZoomSpeed)
	}
	return nil
}

// ParseConfig decodes a YAML document on top of the defaults,
// so keys absent from the document keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(fileName string) (Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", fileName, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", fileName, err)
	}
	return cfg, nil
}
