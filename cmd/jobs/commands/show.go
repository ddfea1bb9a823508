package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/teranos/jobs/am"
	"github.com/teranos/jobs/display"
	"github.com/teranos/jobs/jobs"
	"github.com/teranos/jobs/logger"
)

// screen is a fully rendered banner and table, ready to print
type screen struct {
	banner string
	table  string
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	s, err := loadScreen(a.cfg)
	if err != nil {
		return err
	}
	return s.print(cmd.OutOrStdout(), a.cfg.Display.ClearScreen)
}

// loadScreen runs the whole pipeline: read, build, render. Nothing is
// printed unless every step succeeds.
func loadScreen(cfg *am.Config) (*screen, error) {
	path := cfg.JobsPath()

	records, err := jobs.Read(path)
	if err != nil {
		return nil, err
	}
	return renderScreen(cfg, records)
}

// renderScreen renders already loaded records
func renderScreen(cfg *am.Config, records []jobs.Job) (*screen, error) {
	banner, err := display.RenderBanner(cfg.Display.BannerText)
	if err != nil {
		return nil, err
	}

	model := display.BuildTable(records)
	table, err := display.Render(model)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Rendered job table", logger.FieldCount, len(model.Rows))
	return &screen{banner: banner, table: table}, nil
}

func (s *screen) print(w io.Writer, clear bool) error {
	if clear {
		if err := display.ClearScreen(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, s.banner); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, s.table)
	return err
}
