package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the vault root, compiler endpoint, and the
optional GitHub library fetcher.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsVaultCmd = &cobra.Command{
	Use:   "vault [path]",
	Short: "Set the vault root directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsVault,
}

var settingsCompilerCmd = &cobra.Command{
	Use:   "compiler [url]",
	Short: "Set the compiler service endpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCompiler,
}

var settingsRemoteCmd = &cobra.Command{
	Use:   "remote [on|off]",
	Short: "Enable or disable the GitHub library fetcher",
	Long: `Enable or disable resolution of github:// references.

When enabling, you will be prompted for an access token. Leaving the
token empty restricts the fetcher to public repositories.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsRemote,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsVaultCmd)
	settingsCmd.AddCommand(settingsCompilerCmd)
	settingsCmd.AddCommand(settingsRemoteCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Vault]")
	if settings.Vault.IsConfigured() {
		cmd.Printf("  Path: %s\n", settings.Vault.Path)
	} else {
		cmd.Printf("  Path: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Compiler]")
	cmd.Printf("  Base URL: %s\n", settings.Compiler.BaseURL)
	cmd.Println()

	cmd.Println("[Remote]")
	if settings.Remote.Enabled {
		cmd.Printf("  Enabled: yes\n")
		if settings.Remote.Token != "" {
			cmd.Printf("  Token: %s\n", maskToken(settings.Remote.Token))
		} else {
			cmd.Printf("  Token: (not set, public repositories only)\n")
		}
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.Cache.Enabled {
		cmd.Printf("  Enabled: yes\n")
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Printf("Aliases: %d configured (see 'penrose-vault alias list')\n", len(settings.Aliases))

	if !settings.Vault.IsConfigured() {
		cmd.Println()
		cmd.Println("Warning: vault path not set.")
		cmd.Println("Run 'penrose-vault settings vault <path>' to configure.")
	}

	return nil
}

func runSettingsVault(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("vault path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path %q is not a directory", path)
	}

	if err := settingsService.SetVaultPath(path); err != nil {
		return fmt.Errorf("failed to set vault path: %w", err)
	}

	cmd.Printf("Vault root set to: %s\n", path)
	return nil
}

func runSettingsCompiler(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	url := args[0]
	if err := settingsService.SetCompilerURL(url); err != nil {
		return fmt.Errorf("failed to set compiler endpoint: %w", err)
	}

	cmd.Printf("Compiler endpoint set to: %s\n", url)
	return nil
}

func runSettingsRemote(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	switch args[0] {
	case "off":
		if err := settingsService.SetRemote(false, ""); err != nil {
			return fmt.Errorf("failed to disable remote fetcher: %w", err)
		}
		cmd.Println("GitHub library fetcher disabled.")
		return nil
	case "on":
		cmd.Print("Enter GitHub access token (empty for public repositories only): ")
		token := readPassword()
		cmd.Println()

		if err := settingsService.SetRemote(true, token); err != nil {
			return fmt.Errorf("failed to enable remote fetcher: %w", err)
		}
		cmd.Println("GitHub library fetcher enabled.")
		return nil
	default:
		return fmt.Errorf("invalid argument %q: expected 'on' or 'off'", args[0])
	}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the token without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
