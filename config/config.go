package config

// Config is the loreweave configuration, loaded from loreweave.toml and
// LOREWEAVE_* environment variables.
type Config struct {
	Weave WeaveConfig `mapstructure:"weave"`
	Log   LogConfig   `mapstructure:"log"`
}

// WeaveConfig configures template generation.
type WeaveConfig struct {
	OutputDir string `mapstructure:"output_dir"` // Root directory for generated templates
	Format    string `mapstructure:"format"`     // Output format: yaml, json, md
	Shape     string `mapstructure:"shape"`      // Output shape: single, sheets
	Mode      string `mapstructure:"mode"`       // Template mode: full, basic
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`      // Emit structured JSON instead of console output
	Verbosity int  `mapstructure:"verbosity"` // 0 = user, 1 = info, 2 = debug
}
