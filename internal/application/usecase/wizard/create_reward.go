package wizard

import (
	"context"
	"fmt"

	"github.com/mizusawah/hatlink/internal/application/dto"
	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// CreateReward binds the guild role to a Discord role on the user's server.
// Success moves the wizard into its terminal state.
func (u *UseCase) CreateReward(ctx context.Context, input dto.CreateRewardInput) (*record.RewardRecord, error) {
	if err := u.begin(actionCreateReward); err != nil {
		return nil, err
	}
	defer u.end(actionCreateReward)

	rec, err := u.createReward(ctx, input)
	if err != nil {
		u.report(ctx, actionCreateReward, false, err.Error())
		return nil, err
	}
	u.report(ctx, actionCreateReward, true, "Role created successfully!")
	return rec, nil
}

func (u *UseCase) createReward(ctx context.Context, input dto.CreateRewardInput) (*record.RewardRecord, error) {
	if u.identity.IsZero() {
		return nil, model.ErrNotConnected
	}

	u.mu.Lock()
	guild := u.wizard.Guild()
	u.mu.Unlock()
	if guild == nil {
		return nil, fmt.Errorf("%w: no guild found", model.ErrMissingPrerequisite)
	}
	if guild.GuildRoleID == 0 {
		return nil, fmt.Errorf("%w: guild has no role to reward", model.ErrMissingPrerequisite)
	}

	if input.ServerID == "" {
		return nil, fmt.Errorf("%w: please enter a valid server ID", model.ErrInvalidInput)
	}
	if input.RoleID == "" {
		return nil, fmt.Errorf("%w: please enter a valid role ID", model.ErrInvalidInput)
	}

	binding := output.PlatformBinding{
		PlatformName: "DISCORD",
		ServerID:     input.ServerID,
	}
	err := u.deps.Guilds.CreateRoleReward(ctx, guild.URLName, guild.GuildRoleID, binding, input.RoleID, u.deps.Signer)
	if err != nil {
		return nil, fmt.Errorf("create role reward: %w", err)
	}

	rec := &record.RewardRecord{
		ServerID:    input.ServerID,
		RoleID:      input.RoleID,
		GuildRoleID: guild.GuildRoleID,
	}

	if err := u.deps.Snapshots.Save(ctx, u.identity, model.StepKindReward, rec); err != nil {
		return nil, fmt.Errorf("persist reward record: %w", err)
	}

	u.mu.Lock()
	u.wizard.SetReward(rec)
	u.mu.Unlock()
	return rec, nil
}
