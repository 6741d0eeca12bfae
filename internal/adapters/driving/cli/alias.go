package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage the alias table",
	Long: `List, add, or remove aliases. An alias names a fixed (domain, style)
reference pair so a block can declare "-- alias: foo" instead of two
separate annotations.`,
	RunE: runAliasList,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all aliases",
	RunE:  runAliasList,
}

var aliasAddCmd = &cobra.Command{
	Use:   "add [name] [domain-ref] [style-ref]",
	Short: "Add or replace an alias",
	Args:  cobra.ExactArgs(3),
	RunE:  runAliasAdd,
}

var aliasRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRemove,
}

func init() {
	aliasCmd.AddCommand(aliasListCmd)
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
	rootCmd.AddCommand(aliasCmd)
}

func runAliasList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	table, err := settingsService.Aliases()
	if err != nil {
		return fmt.Errorf("loading aliases: %w", err)
	}

	if len(table) == 0 {
		cmd.Println("No aliases configured.")
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := table[name]
		cmd.Printf("%s\n  domain: %s\n  style:  %s\n", name, entry.Domain, entry.Style)
	}
	return nil
}

func runAliasAdd(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	name := args[0]
	entry := domain.AliasEntry{Domain: args[1], Style: args[2]}
	if err := settingsService.PutAlias(name, entry); err != nil {
		return err
	}

	cmd.Printf("Alias %q saved.\n", name)
	return nil
}

func runAliasRemove(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.RemoveAlias(args[0]); err != nil {
		return err
	}

	cmd.Printf("Alias %q removed.\n", args[0])
	return nil
}
