package am

import (
	"strings"

	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Display.BannerText) == "" {
		return errors.NewInvalidConfigError("display.banner_text cannot be empty")
	}

	// Empty theme falls back to the logger default
	if c.Log.Theme != "" && !logger.IsTheme(c.Log.Theme) {
		return errors.WithHintf(
			errors.NewInvalidConfigError("log.theme %q is not supported", c.Log.Theme),
			"use one of: %s", strings.Join(logger.Themes, ", "))
	}

	return nil
}
