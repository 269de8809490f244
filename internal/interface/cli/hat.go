package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/dto"
	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newHatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hat",
		Short: "Hat selection step",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newHatSearchCmd())
	return cmd
}

func newHatSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <hat-id>",
		Short: "Verify a hat by its decimal ID and record it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				rec, err := u.SearchHat(ctx, dto.SearchHatInput{HatID: args[0]})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Hat     : %s (%s)\n", rec.Name, rec.PrettyID)
				fmt.Fprintf(out, "Top hat : %s\n", rec.TopHatName)
				fmt.Fprintf(out, "Wearers : %d\n", len(rec.Wearers))
				return nil
			})
		},
	}
}
