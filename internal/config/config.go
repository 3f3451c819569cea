// Package config defines the application configuration and loads it from a
// YAML file with environment-variable overrides. A missing config file is not
// an error; built-in defaults cover every setting.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

// Configuration holds all configuration for the affordability service.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Market  *MarketConfig `yaml:"market,omitempty"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address          string `yaml:"address,omitempty"`
	MaxBodySize      string `yaml:"maxBodySize,omitempty"` // e.g. "64K", "1M"
	RateLimitPerMin  int    `yaml:"rateLimitPerMin,omitempty"`
	maxBodySizeBytes int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options for the CLI mode.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// MarketConfig carries optional overrides of the built-in regional profile.
// Zero-valued fields keep the default.
type MarketConfig struct {
	Region            string             `yaml:"region,omitempty"`
	PropertyTaxRate   float64            `yaml:"propertyTaxRate,omitempty"`
	HomeInsuranceRate float64            `yaml:"homeInsuranceRate,omitempty"`
	Benchmarks        BenchmarksConfig   `yaml:"benchmarks,omitempty"`
	Utilities         map[string]float64 `yaml:"utilities,omitempty"`
}

// BenchmarksConfig carries optional overrides of the posted rate benchmarks.
type BenchmarksConfig struct {
	OneYearFixed   float64 `yaml:"oneYearFixed,omitempty"`
	ThreeYearFixed float64 `yaml:"threeYearFixed,omitempty"`
	FiveYearFixed  float64 `yaml:"fiveYearFixed,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A nonexistent file yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := &Configuration{}

	if configPath != "" {
		v := viper.New()
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		v.AutomaticEnv()

		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return configuration.normalize()
			}
			return nil, fmt.Errorf("error reading config file, %w", err)
		}

		if err := v.Unmarshal(configuration); err != nil {
			return nil, fmt.Errorf("unable to decode into struct, %w", err)
		}
	}

	return configuration.normalize()
}

func (c *Configuration) normalize() (*Configuration, error) {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.RateLimitPerMin <= 0 {
		c.Server.RateLimitPerMin = constants.DefaultRateLimitRequests
	}

	bytes, err := ParseSize(c.Server.MaxBodySize)
	if err != nil {
		return nil, err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodyBytes
	}
	c.Server.maxBodySizeBytes = bytes

	return c, nil
}

// MaxBodySizeBytes returns the configured request body limit in bytes.
func (s ServerConfig) MaxBodySizeBytes() int64 {
	if s.maxBodySizeBytes <= 0 {
		return constants.DefaultMaxBodyBytes
	}
	return s.maxBodySizeBytes
}

// MarketData merges the configured overrides onto the built-in regional
// profile and returns the effective market data.
func (c *Configuration) MarketData() market.Data {
	data := market.Default()
	if c.Market == nil {
		return data
	}

	if c.Market.Region != "" {
		data.Region = c.Market.Region
	}
	if c.Market.PropertyTaxRate > 0 {
		data.PropertyTaxRate = c.Market.PropertyTaxRate
	}
	if c.Market.HomeInsuranceRate > 0 {
		data.HomeInsuranceRate = c.Market.HomeInsuranceRate
	}
	if c.Market.Benchmarks.OneYearFixed > 0 {
		data.Benchmarks.OneYearFixed = c.Market.Benchmarks.OneYearFixed
	}
	if c.Market.Benchmarks.ThreeYearFixed > 0 {
		data.Benchmarks.ThreeYearFixed = c.Market.Benchmarks.ThreeYearFixed
	}
	if c.Market.Benchmarks.FiveYearFixed > 0 {
		data.Benchmarks.FiveYearFixed = c.Market.Benchmarks.FiveYearFixed
	}
	for heating, estimate := range c.Market.Utilities {
		data.Utilities[market.HeatingType(heating)] = estimate
	}

	return data
}
