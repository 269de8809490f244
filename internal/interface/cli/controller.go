package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
	"github.com/mizusawah/hatlink/internal/infrastructure/di"
)

// withController wires the infrastructure for the loaded configuration,
// builds the wizard controller for the connected identity, and runs fn.
func withController(cmd *cobra.Command, fn func(ctx context.Context, u *wizard.UseCase) error) error {
	container, err := di.Build(globalConfig)
	if err != nil {
		return err
	}
	defer container.Close()

	ctx := cmd.Context()
	notifier := &writerNotifier{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
	u, err := wizard.New(ctx, container.WizardDeps(notifier))
	if err != nil {
		return err
	}
	return fn(ctx, u)
}
