package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var trioMetadataOnly bool

var trioCmd = &cobra.Command{
	Use:   "trio [source-file]",
	Short: "Resolve a trio from diagram source",
	Long: `Parse annotations out of diagram source and resolve the full trio:
the substance, the fetched domain and style bodies, and the variation.

Reads the source file, or stdin when the argument is "-". Use
--metadata to print the parsed references without fetching.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrio,
}

func init() {
	trioCmd.Flags().BoolVarP(&trioMetadataOnly, "metadata", "m", false, "Print parsed references without fetching")
	rootCmd.AddCommand(trioCmd)
}

func runTrio(cmd *cobra.Command, args []string) error {
	if trioResolver == nil {
		return errors.New("trio resolver not configured")
	}

	substance, err := readSource(args[0])
	if err != nil {
		return err
	}

	if trioMetadataOnly {
		meta := trioResolver.Metadata(substance)
		cmd.Printf("alias:     %s\n", orNone(meta.AliasName))
		cmd.Printf("domain:    %s\n", orNone(meta.Domain))
		cmd.Printf("style:     %s\n", orNone(meta.Style))
		cmd.Printf("variation: %s\n", orNone(meta.Variation))
		return nil
	}

	trio := trioResolver.Resolve(cmd.Context(), substance)

	cmd.Printf("variation: %s\n", orNone(trio.Variation))
	cmd.Printf("substance: %d bytes\n", len(trio.Substance))
	cmd.Println()
	cmd.Println("--- domain ---")
	cmd.Println(trio.Domain)
	cmd.Println("--- style ---")
	cmd.Println(trio.Style)
	return nil
}

// readSource reads a file argument, treating "-" as stdin.
func readSource(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

// orNone renders empty metadata fields readably.
func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
