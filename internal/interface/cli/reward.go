package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/dto"
	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Discord role reward step",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newRewardCreateCmd())
	return cmd
}

func newRewardCreateCmd() *cobra.Command {
	var serverID, roleID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Bind the guild role to a Discord role on your server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				rec, err := u.CreateReward(ctx, dto.CreateRewardInput{
					ServerID: serverID,
					RoleID:   roleID,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reward  : role %s on server %s\n", rec.RoleID, rec.ServerID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&serverID, "server-id", "", "Discord server ID")
	cmd.Flags().StringVar(&roleID, "role-id", "", "Discord role ID")
	return cmd
}
