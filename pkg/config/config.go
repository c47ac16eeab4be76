// Package config loads indicator pipelines from YAML files.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/indicator/pkg/types"
)

var log = logrus.WithField("component", "config")

// IndicatorConfig describes one indicator of a pipeline. Zero periods fall back to the
// default period of the indicator type.
type IndicatorConfig struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`

	// Field is the kline value fed to scalar indicators, close by default.
	Field types.PriceField `json:"field,omitempty" yaml:"field,omitempty"`

	// Of feeds the first column of another indicator instead of a kline field.
	Of *IndicatorConfig `json:"of,omitempty" yaml:"of,omitempty"`

	Period int     `json:"period,omitempty" yaml:"period,omitempty"`
	Alpha  float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`

	Short  int `json:"short,omitempty" yaml:"short,omitempty"`
	Long   int `json:"long,omitempty" yaml:"long,omitempty"`
	Signal int `json:"signal,omitempty" yaml:"signal,omitempty"`

	K     int `json:"k,omitempty" yaml:"k,omitempty"`
	D     int `json:"d,omitempty" yaml:"d,omitempty"`
	SlowD int `json:"slowD,omitempty" yaml:"slowD,omitempty"`

	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`

	// Mature suppresses the first n outputs.
	Mature int `json:"mature,omitempty" yaml:"mature,omitempty"`

	// Window emits the last n outputs of every column.
	Window int `json:"window,omitempty" yaml:"window,omitempty"`
}

func (c IndicatorConfig) period(def int) int {
	if c.Period == 0 {
		return def
	}

	return c.Period
}

type Config struct {
	Symbol   string         `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Interval types.Interval `json:"interval,omitempty" yaml:"interval,omitempty"`

	Indicators []IndicatorConfig `json:"indicators" yaml:"indicators"`
}

// Load reads and validates a pipeline config file.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := LoadFromBytes(content)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}

	return config, nil
}

func LoadFromBytes(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, err
	}

	if config.Interval == "" {
		config.Interval = types.Interval1m
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every indicator entry and reports all problems at once.
func (c *Config) Validate() (err error) {
	if len(c.Indicators) == 0 {
		return errors.New("no indicators configured")
	}

	if _, ok := types.SupportedIntervals[c.Interval]; !ok {
		err = multierr.Append(err, errors.Errorf("unsupported interval %q", c.Interval))
	}

	names := map[string]struct{}{}
	for i, ic := range c.Indicators {
		if ic.Name == "" {
			err = multierr.Append(err, errors.Errorf("indicators[%d]: name is required", i))
		} else if _, dup := names[ic.Name]; dup {
			err = multierr.Append(err, errors.Errorf("indicators[%d]: duplicated name %q", i, ic.Name))
		}

		names[ic.Name] = struct{}{}

		if e := ic.validate(); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "indicators[%d]", i))
		}
	}

	return err
}

func (c IndicatorConfig) validate() (err error) {
	f, ok := lookup(c.Type)
	if !ok {
		return errors.Wrapf(ErrUnknownIndicatorType, "%q", c.Type)
	}

	if c.Mature < 0 {
		err = multierr.Append(err, errors.Errorf("mature must not be negative, given %d", c.Mature))
	}

	if c.Window < 0 {
		err = multierr.Append(err, errors.Errorf("window must not be negative, given %d", c.Window))
	}

	if c.Of != nil {
		if !f.Scalar {
			err = multierr.Append(err, errors.Errorf("%s does not accept another indicator as input", c.Type))
		}

		if e := c.Of.validate(); e != nil {
			err = multierr.Append(err, errors.Wrap(e, "of"))
		}
	}

	return err
}
