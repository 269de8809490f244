package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/app/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file under the state directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.SettingsPath(globalConfig.Home)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteSettings(globalConfig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	return cmd
}
