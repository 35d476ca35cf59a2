package config

import (
	"fmt"

	"github.com/safedep/dry/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load builds the configuration from the flag set. Values come from, in order
// of precedence, flags set on the command line, the YAML file named by
// --config and the flag defaults. No environment variables are consulted.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(FlagKey, defaults.Key)

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	configFile := v.GetString(FlagConfig)
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}

		log.Debugf("Loaded config from %s", configFile)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
