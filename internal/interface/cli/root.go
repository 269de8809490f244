// Package cli is the command-line surface of the hat-to-Discord linking
// wizard. Each wizard step is a subcommand; navigation and status commands
// operate on the persisted session.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/app/config"
)

// globalConfig holds the loaded configuration for all commands
var globalConfig config.AppConfig

// defaultHome resolves the state directory: --home flag, HATLINK_HOME, or
// ~/.hatlink
func defaultHome() string {
	if home := os.Getenv("HATLINK_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".hatlink"
	}
	return filepath.Join(userHome, ".hatlink")
}

func NewRoot() *cobra.Command {
	var homeFlag string

	cmd := &cobra.Command{
		Use:   "hatlink",
		Short: "Link a hat to a Discord role through a token-gated guild",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home := homeFlag
			if home == "" {
				home = defaultHome()
			}
			cfg, err := config.LoadSettings(home)
			if err != nil {
				return err
			}
			globalConfig = cfg
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.PersistentFlags().StringVar(&homeFlag, "home", "", "State directory (default $HATLINK_HOME or ~/.hatlink)")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newJournalCmd())
	cmd.AddCommand(newHatCmd())
	cmd.AddCommand(newGuildCmd())
	cmd.AddCommand(newBotCmd())
	cmd.AddCommand(newRewardCmd())
	cmd.AddCommand(newNextCmd())
	cmd.AddCommand(newBackCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newArchiveCmd())
	return cmd
}
