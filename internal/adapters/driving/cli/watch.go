package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adityakanu/penrose-vault/internal/adapters/driven/vault"
	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and re-render changed notes",
	Long: `Watch the vault for markdown changes and re-render the diagram
blocks of each changed note. Editor write bursts are debounced so a
save triggers one render pass.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || renderService == nil {
		return errors.New("render service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if !settings.Vault.IsConfigured() {
		return fmt.Errorf("%w: run 'penrose-vault settings vault <path>'", domain.ErrVaultNotConfigured)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for changes...\n", settings.Vault.Path)

	watcher := vault.NewWatcher(settings.Vault.Path)
	err = watcher.Watch(ctx, func(path string) {
		renderChangedNote(ctx, cmd, path)
	})
	if errors.Is(err, context.Canceled) {
		cmd.Println("\nStopped.")
		return nil
	}
	return err
}

// renderChangedNote renders one note and reports per-block outcomes.
// Failures stay on this note; the watch loop keeps running.
func renderChangedNote(ctx context.Context, cmd *cobra.Command, path string) {
	text, err := os.ReadFile(path)
	if err != nil {
		cmd.Printf("%s: %v\n", path, err)
		return
	}

	results, err := renderService.RenderNote(ctx, path, string(text))
	if err != nil {
		cmd.Printf("%s: %v\n", path, err)
		return
	}
	if len(results) == 0 {
		return
	}

	rendered, failed := 0, 0
	for _, result := range results {
		if result.Failed() {
			failed++
			cmd.Printf("%s (line %d): %s failed: %s\n",
				path, result.Block.StartLine, result.FailedStage, result.Failure)
			continue
		}
		rendered++
	}
	cmd.Printf("%s: %d rendered, %d failed\n", path, rendered, failed)
}
