// Package config is for app-wide settings that are unmarshalled from
// Viper (see /internal/cmd).
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// PCRConfig is settings for the PCR simulator.
type PCRConfig struct {
	// minimum 3'-anchored exact-match length to call a primer binding site
	MinAnnealLen int `mapstructure:"min-anneal-len"`
}

// DigestConfig is settings for restriction digestion output.
type DigestConfig struct {
	// whether fragment sequences are included in saved results
	IncludeSequences bool `mapstructure:"include-sequences"`
}

// Config is the root-level settings struct, a mix of settings from an
// optional config file, PRIMERPIONEER_* environment variables, and
// command-line flags.
type Config struct {
	// output format: text | json
	Format string `mapstructure:"format"`

	PCR    PCRConfig    `mapstructure:"pcr"`
	Digest DigestConfig `mapstructure:"digest"`
}

// New returns a Config populated by Viper.
func New() (Config, error) {
	v := viper.GetViper()
	v.SetDefault("format", "text")
	v.SetDefault("pcr.min-anneal-len", 15)
	v.SetDefault("digest.include-sequences", true)

	v.SetEnvPrefix("PRIMERPIONEER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
