package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults
const (
	DefaultBannerText   = "Job Applications"
	DefaultJobsFileName = "jobs.json"
	DefaultLogTheme     = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Empty path resolves next to the installed binary, see ResolveJobsPath
	v.SetDefault("jobs.path", "")

	v.SetDefault("display.banner_text", DefaultBannerText)
	v.SetDefault("display.clear_screen", true)

	v.SetDefault("log.theme", DefaultLogTheme)
	v.SetDefault("log.json", false)
}

// BindEnvVars binds keys whose environment names don't follow the
// JOBS_<SECTION>_<KEY> pattern
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("jobs.path", "JOBS_PATH", "JOBS_JOBS_PATH")
	_ = v.BindEnv("log.theme", "JOBS_LOG_THEME")
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Jobs: {Path: %q}, Display: {BannerText: %q, ClearScreen: %t}, Log: {Theme: %s, JSON: %t}}",
		c.Jobs.Path, c.Display.BannerText, c.Display.ClearScreen, c.Log.Theme, c.Log.JSON)
}
