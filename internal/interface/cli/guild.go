package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newGuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guild",
		Short: "Guild creation step",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newGuildCreateCmd())
	cmd.AddCommand(newGuildLinkCmd())
	return cmd
}

func newGuildCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a guild for the tree with a role gated on the selected hat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				rec, err := u.CreateGuild(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Guild   : %s (https://guild.xyz/%s)\n", rec.Name, rec.URLName)
				return nil
			})
		},
	}
}

func newGuildLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Publish the guild reference into the top hat's metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				_, err := u.LinkGuildMetadata(ctx)
				return err
			})
		},
	}
}
