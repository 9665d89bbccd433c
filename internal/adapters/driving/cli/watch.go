package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-cli/internal/logger"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recalculate whenever a profile file changes",
	Long: `Print the plan for a profile file, then print it again every time the
file is saved. Flags given on the command line keep overriding the file.
Stop with Ctrl+C.

Example:
  pizza watch --profile neapolitan.toml --start 18:00`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	bindCalcFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if calcOpts.profilePath == "" {
		return errors.New("--profile is required")
	}
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}

	recalc := func() {
		if err := runCalc(cmd, nil); err != nil {
			// A half-written file must not end the session.
			cmd.PrintErrf("Error: %v\n", err)
		}
	}

	recalc()
	return watchFile(cmd.Context(), calcOpts.profilePath, cmd.ErrOrStderr(), recalc)
}

// watchFile calls onChange after path is written, created or renamed
// into place, until ctx is done. The parent directory is watched because
// editors often replace a file instead of writing it in place.
func watchFile(ctx context.Context, path string, status io.Writer, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	fmt.Fprintf(status, "Watching %s (Ctrl+C to stop)\n", path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("watch: %s", ev)
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
