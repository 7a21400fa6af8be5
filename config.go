package hashdict

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the construction parameters. Zero fields keep
// their defaults.
//
//	initial-capacity = 211
//	max-load-factor = 0.6
type Config struct {
	InitialCapacity int     `toml:"initial-capacity"`
	MaxLoadFactor   float64 `toml:"max-load-factor"`
}

// LoadConfig decodes a TOML file into a Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig decodes TOML text into a Config.
func ParseConfig(text string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return nil
}

// Options converts the non-zero fields of cfg into construction options.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.InitialCapacity != 0 {
		opts = append(opts, WithCapacity(cfg.InitialCapacity))
	}
	if cfg.MaxLoadFactor != 0 {
		opts = append(opts, WithLoadFactor(cfg.MaxLoadFactor))
	}
	return opts
}
