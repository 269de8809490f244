package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Bot attestation step",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "confirm",
		Short: "Record that the guild bot was added to your Discord server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				_, err := u.AttestBot(ctx, true)
				return err
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "retract",
		Short: "Retract the bot attestation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				_, err := u.AttestBot(ctx, false)
				return err
			})
		},
	})
	return cmd
}
