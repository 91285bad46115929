// -*- tab-width:2 -*-

package copula

import (
	"os"

	ll "github.com/jayalane/go-lll"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the numerical policy shared by the bound engines.
type Config struct {
	// Adaptive quadrature stops once the summed error estimate is below
	// max(EpsAbs, EpsRel*|value|).
	EpsAbs float64 `yaml:"eps_abs"`
	EpsRel float64 `yaml:"eps_rel"`
	// Limit is the maximum number of subintervals.
	Limit int `yaml:"limit"`
	// Workers bounds parallel batch evaluation, <= 1 is serial.
	Workers int `yaml:"workers"`
	// LogLevel is handed to go-lll by ApplyLogging.
	LogLevel string `yaml:"log_level"`
}

const minEpsRel = 50 * 0x1p-52

// DefaultConfig returns tolerances close to the usual QUADPACK defaults.
func DefaultConfig() *Config {
	return &Config{
		EpsAbs:   1.49e-8, //nolint:mnd
		EpsRel:   1.49e-8, //nolint:mnd
		Limit:    500,     //nolint:mnd
		Workers:  1,
		LogLevel: defaultLogLevel,
	}
}

// ParseConfig decodes YAML on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller chooses the file
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	return ParseConfig(data)
}

// Validate checks the numerical policy.
func (c *Config) Validate() error {
	// QAG cannot reach a relative tolerance below 50 ulps on its own
	if !(c.EpsAbs >= 0) || !(c.EpsRel >= 0) || (c.EpsAbs == 0 && c.EpsRel < minEpsRel) {
		return errors.Wrapf(ErrParam, "tolerances eps_abs=%g eps_rel=%g", c.EpsAbs, c.EpsRel)
	}

	if c.Limit < 1 {
		return errors.Wrapf(ErrParam, "limit %d", c.Limit)
	}

	return nil
}

// ApplyLogging installs a go-lll logger at the configured level. It
// only has an effect before the logger is first used.
func (c *Config) ApplyLogging() {
	level := c.LogLevel
	if level == "" {
		level = defaultLogLevel
	}

	InitWithLogger(ll.Init("COPULA", level))
}

func orDefault(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}

	return cfg
}
