package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/infrastructure/di"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect archived metadata documents",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newArchiveListCmd())
	return cmd
}

func newArchiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents archived for the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := di.Build(globalConfig)
			if err != nil {
				return err
			}
			defer container.Close()

			archive := container.Archive()
			if archive == nil {
				return fmt.Errorf("no archive backend configured (set archive_backend in settings.yaml)")
			}

			entries, err := archive.ListArchives(cmd.Context(), container.Signer.Address().String())
			if err != nil {
				return fmt.Errorf("list archives: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No archived documents.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %8d bytes  %s\n",
					e.ArchivedAt.Format("2006-01-02 15:04:05"), e.Size, e.CID)
			}
			return nil
		},
	}
}
