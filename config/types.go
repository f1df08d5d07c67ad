package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Guild Wars 2 API connection details
type APIConfig struct {
	// Language for localized content (en, es, de, fr, ko, zh)
	Lang string `mapstructure:"lang"`
	// API token for account-bound endpoints
	Token string `mapstructure:"token"`
	// API origin override, normally left empty
	URL string `mapstructure:"url"`
	// Request timeout in seconds
	Timeout int `mapstructure:"timeout"`
}

// FilterConfig contains achievement filter settings
type FilterConfig struct {
	// Expression applied when no --filter flag is given
	Default string `mapstructure:"default"`
	// Named filter expressions selectable with --preset
	Presets map[string]string `mapstructure:"presets"`
}

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
