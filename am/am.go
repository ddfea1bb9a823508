// Package am loads the jobs configuration ("I am").
//
// Configuration sources (in order of precedence):
//  1. Command line flags (set on the Viper instance by cmd/jobs)
//  2. Environment variables (JOBS_* prefix)
//  3. Project config (nearest ./am.toml walking up)
//  4. User config (~/.jobs/am.toml)
//  5. System config (/etc/jobs/am.toml)
//  6. Default values
package am

// Config represents the jobs CLI configuration
type Config struct {
	Jobs    JobsConfig    `mapstructure:"jobs" json:"jobs" yaml:"jobs" toml:"jobs"`
	Display DisplayConfig `mapstructure:"display" json:"display" yaml:"display" toml:"display"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// JobsConfig locates the job applications file
type JobsConfig struct {
	// Path to the jobs file. Empty = jobs.json next to the install directory.
	// The extension picks the decoder: .json, .yaml/.yml, .toml
	Path string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`
}

// DisplayConfig configures terminal output
type DisplayConfig struct {
	BannerText  string `mapstructure:"banner_text" json:"banner_text" yaml:"banner_text" toml:"banner_text"`
	ClearScreen bool   `mapstructure:"clear_screen" json:"clear_screen" yaml:"clear_screen" toml:"clear_screen"`
}

// LogConfig configures the diagnostic logger (stderr)
type LogConfig struct {
	Theme string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme"` // everforest, gruvbox
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
}
