package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [note.md]",
	Short: "List the penrose blocks in a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocks,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	if blockService == nil {
		return errors.New("block service not configured")
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading note: %w", err)
	}

	found := blockService.Discover(args[0], string(text))
	if len(found) == 0 {
		cmd.Println("No penrose blocks found.")
		return nil
	}

	for i, block := range found {
		meta := trioResolver.Metadata(block.Substance)
		cmd.Printf("Block %d: lines %d-%d\n", i+1, block.StartLine, block.EndLine)
		cmd.Printf("  alias:     %s\n", orNone(meta.AliasName))
		cmd.Printf("  domain:    %s\n", orNone(meta.Domain))
		cmd.Printf("  style:     %s\n", orNone(meta.Style))
		cmd.Printf("  variation: %s\n", orNone(meta.Variation))
	}

	return nil
}
