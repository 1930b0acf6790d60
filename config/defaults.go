package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("weave.output_dir", "lore/templates")
	v.SetDefault("weave.format", "yaml")
	v.SetDefault("weave.shape", "single")
	v.SetDefault("weave.mode", "full")

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
