package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teranos/jobs/jobs"
	"github.com/teranos/jobs/logger"
)

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Redraw the table whenever the jobs file changes",
		Long: `Draw the banner and table, then redraw them every time the jobs file
is saved. Stop with Ctrl+C.

A save that leaves the file unreadable or malformed is logged to stderr and
the last good table stays on screen.`,
		Args: cobra.NoArgs,
		RunE: a.runWatch,
	}
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.watch(ctx, cmd)
}

// watch draws once, then redraws on every change until ctx is done
func (a *app) watch(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := a.cfg.JobsPath()

	// Start-up failures abort like the plain command does
	s, err := loadScreen(a.cfg)
	if err != nil {
		return err
	}

	w, err := jobs.NewWatcher(path)
	if err != nil {
		return err
	}

	if err := s.print(out, a.cfg.Display.ClearScreen); err != nil {
		return err
	}

	w.OnChange(func(records []jobs.Job, err error) {
		if err != nil {
			// Already logged by the watcher; keep the last good screen
			PrintError(cmd.ErrOrStderr(), err)
			return
		}
		next, err := renderScreen(a.cfg, records)
		if err != nil {
			logger.Errorw("Redraw failed", logger.FieldError, err)
			return
		}
		if err := next.print(out, a.cfg.Display.ClearScreen); err != nil {
			logger.Errorw("Redraw failed", logger.FieldError, err)
		}
	})

	logger.Infow("Watching jobs file", logger.FieldPath, w.Path())
	return w.Run(ctx)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
