package wizard

import (
	"context"
	"fmt"

	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// AttestBot records the user's statement that the guild service bot was
// added to their Discord server. This is a trust-the-user boundary: nothing
// is verified upstream, and the attestation can be retracted.
func (u *UseCase) AttestBot(ctx context.Context, added bool) (*record.BotAttestation, error) {
	if err := u.begin(actionAttestBot); err != nil {
		return nil, err
	}
	defer u.end(actionAttestBot)

	rec, err := u.attestBot(ctx, added)
	if err != nil {
		u.report(ctx, actionAttestBot, false, err.Error())
		return nil, err
	}
	if added {
		u.report(ctx, actionAttestBot, true, "Bot attestation recorded")
	} else {
		u.report(ctx, actionAttestBot, true, "Bot attestation retracted")
	}
	return rec, nil
}

func (u *UseCase) attestBot(ctx context.Context, added bool) (*record.BotAttestation, error) {
	if u.identity.IsZero() {
		return nil, model.ErrNotConnected
	}

	u.mu.Lock()
	guild := u.wizard.Guild()
	u.mu.Unlock()
	if guild == nil {
		return nil, fmt.Errorf("%w: please create a guild first", model.ErrMissingPrerequisite)
	}

	rec := &record.BotAttestation{Added: added}
	if err := u.deps.Snapshots.Save(ctx, u.identity, model.StepKindBot, rec); err != nil {
		return nil, fmt.Errorf("persist bot attestation: %w", err)
	}

	u.mu.Lock()
	u.wizard.SetBot(rec)
	u.mu.Unlock()
	return rec, nil
}
