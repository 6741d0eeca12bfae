package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var renderOutDir string

var renderCmd = &cobra.Command{
	Use:   "render [note.md]",
	Short: "Render the diagram blocks in a note",
	Long: `Resolve and render every penrose block in a note.

Rendered SVGs are printed to stdout, or written next to the note as
<note>.<n>.svg with --out. A block that fails to compile or optimize
prints the compiler's failure text in place of a diagram; other blocks
in the note still render.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "Directory to write SVG files to")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	notePath := args[0]
	text, err := os.ReadFile(notePath)
	if err != nil {
		return fmt.Errorf("reading note: %w", err)
	}

	results, err := renderService.RenderNote(cmd.Context(), notePath, string(text))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		cmd.Println("No penrose blocks found.")
		return nil
	}

	for i, result := range results {
		if result.Failed() {
			cmd.Printf("Block %d (line %d): %s failed: %s\n",
				i+1, result.Block.StartLine, result.FailedStage, result.Failure)
			continue
		}

		if renderOutDir == "" {
			cmd.Printf("Block %d (line %d):\n%s\n", i+1, result.Block.StartLine, result.SVG)
			continue
		}

		name := fmt.Sprintf("%s.%d.svg", trimExt(filepath.Base(notePath)), i+1)
		outPath := filepath.Join(renderOutDir, name)
		if err := os.WriteFile(outPath, []byte(result.SVG), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		cmd.Printf("Block %d (line %d) -> %s", i+1, result.Block.StartLine, outPath)
		if result.Cached {
			cmd.Print(" (cached)")
		}
		cmd.Println()
	}

	return nil
}

// trimExt drops the file extension from a note name.
func trimExt(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}
