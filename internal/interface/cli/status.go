package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the wizard session for the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				st := u.Status()

				if jsonOutput {
					b, err := json.MarshalIndent(st, "", "  ")
					if err != nil {
						return fmt.Errorf("marshal status: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(b))
					return nil
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Wallet  : %s\n", st.Identity)
				for _, step := range st.Steps {
					marker := " "
					if step.Satisfied {
						marker = "x"
					}
					cursor := "  "
					if step.Current {
						cursor = "> "
					}
					fmt.Fprintf(out, "%s[%s] %d. %s\n", cursor, marker, step.Index+1, step.Title)
				}
				if st.Completed {
					fmt.Fprintln(out, "Session complete: the Discord role is linked.")
				}
				if st.HatName != "" {
					fmt.Fprintf(out, "Hat     : %s (%s)\n", st.HatName, st.HatID)
				}
				if st.GuildName != "" {
					fmt.Fprintf(out, "Guild   : %s (%s)\n", st.GuildName, st.GuildURL)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output status in JSON format")
	return cmd
}
