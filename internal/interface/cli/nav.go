package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Advance to the next step (requires the current step to be done)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				if err := u.Advance(); err != nil {
					return err
				}
				printCurrentStep(cmd, u)
				return nil
			})
		},
	}
}

func newBackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go back one step (never discards completed work)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, u *wizard.UseCase) error {
				if err := u.Retreat(); err != nil {
					return err
				}
				printCurrentStep(cmd, u)
				return nil
			})
		},
	}
}

func printCurrentStep(cmd *cobra.Command, u *wizard.UseCase) {
	st := u.Status()
	if st.Completed {
		fmt.Fprintln(cmd.OutOrStdout(), "Session complete.")
		return
	}
	for _, step := range st.Steps {
		if step.Current {
			fmt.Fprintf(cmd.OutOrStdout(), "Now at step %d: %s\n", step.Index+1, step.Title)
			return
		}
	}
}
