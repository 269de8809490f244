package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/infrastructure/repository"
)

func newJournalCmd() *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent step outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			journal := repository.NewJournalRepositoryImpl(
				afero.NewOsFs(), filepath.Join(globalConfig.Home, "journal.ndjson"))

			entries, err := journal.Tail(cmd.Context(), tail)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No journal entries yet.")
				return nil
			}

			for _, e := range entries {
				outcome := "ok"
				if !e.OK {
					outcome = "error"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-13s %-5s %s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Step, outcome, e.Message)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&tail, "tail", 20, "Number of entries to show")
	return cmd
}
