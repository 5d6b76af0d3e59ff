package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),

		Assets: AssetsConfig{
			Dir: "", // Will use <base>/assets
		},

		Search: DefaultSearchConfig(),
	}
}
