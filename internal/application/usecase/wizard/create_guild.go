package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
	"github.com/mizusawah/hatlink/internal/domain/service"
)

// CreateGuild creates a guild named after the tree's top hat with a single
// role gated on holding the selected hat, and records it as the wizard's
// step 1 result.
func (u *UseCase) CreateGuild(ctx context.Context) (*record.GuildRecord, error) {
	if err := u.begin(actionCreateGuild); err != nil {
		return nil, err
	}
	defer u.end(actionCreateGuild)

	rec, err := u.createGuild(ctx)
	if err != nil {
		u.report(ctx, actionCreateGuild, false, err.Error())
		return nil, err
	}
	u.report(ctx, actionCreateGuild, true, "Guild created successfully!")
	return rec, nil
}

func (u *UseCase) createGuild(ctx context.Context) (*record.GuildRecord, error) {
	if u.identity.IsZero() {
		return nil, model.ErrNotConnected
	}

	u.mu.Lock()
	hat := u.wizard.Hat()
	u.mu.Unlock()
	if hat == nil {
		return nil, fmt.Errorf("%w: please select a hat first", model.ErrMissingPrerequisite)
	}

	spec := output.GuildSpec{
		Name:        hat.TopHatName,
		URLName:     service.Slugify(hat.TopHatName),
		Description: hat.TopHatDescription,
		ShowMembers: true,
		Roles: []output.GuildRoleSpec{
			{
				Name:        hat.Name,
				Description: hat.Description,
				Requirement: output.TokenRequirement{
					Address: u.deps.Config.TokenAddress,
					Chain:   u.deps.Config.ChainLabel,
					Type:    "ERC1155",
					IDs:     []string{hat.DecimalID},
				},
			},
		},
	}

	guild, err := u.deps.Guilds.CreateGuild(ctx, spec, u.deps.Signer)
	if err != nil {
		return nil, fmt.Errorf("create guild: %w", err)
	}

	var roleID int64
	for _, role := range guild.Roles {
		if role.Name == hat.Name {
			roleID = role.ID
			break
		}
	}
	if roleID == 0 {
		return nil, errors.New("guild role not found")
	}

	rec := &record.GuildRecord{
		ID:          guild.ID,
		URLName:     guild.URLName,
		Name:        guild.Name,
		Description: guild.Description,
		ImageURL:    guild.ImageURL,
		GuildRoleID: roleID,
	}

	if err := u.deps.Snapshots.Save(ctx, u.identity, model.StepKindGuild, rec); err != nil {
		return nil, fmt.Errorf("persist guild record: %w", err)
	}

	u.mu.Lock()
	u.wizard.SetGuild(rec)
	u.mu.Unlock()
	return rec, nil
}
