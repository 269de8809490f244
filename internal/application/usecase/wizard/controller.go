package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mizusawah/hatlink/internal/app"
	"github.com/mizusawah/hatlink/internal/application/dto"
	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
	wizardmodel "github.com/mizusawah/hatlink/internal/domain/model/wizard"
	"github.com/mizusawah/hatlink/internal/domain/repository"
	"github.com/mizusawah/hatlink/internal/domain/service"
)

// Action names used for the per-step in-flight guards and journal entries
const (
	actionSearchHat    = "hat.search"
	actionCreateGuild  = "guild.create"
	actionLinkMetadata = "guild.link"
	actionAttestBot    = "bot.attest"
	actionCreateReward = "reward.create"
)

var stepTitles = []string{"Select Hat", "Create Guild", "Add Bot", "Create Role"}

// Config holds the chain-facing constants the step actions need
type Config struct {
	ChainLabel   string // chain label understood by the guild service, e.g. SEPOLIA
	TokenAddress string // hats ERC1155 contract address for role requirements
}

// Deps bundles the collaborators injected into the controller
type Deps struct {
	Snapshots repository.SnapshotRepository
	Journal   repository.JournalRepository // optional
	Graph     output.HatGraphGateway
	Documents output.DocumentFetcher
	Guilds    output.GuildGateway
	Chain     output.ChainGateway
	Pinner    output.MetadataPinner
	Archive   output.DocumentArchiveGateway // optional
	Signer    output.SignerGateway
	Notifier  output.Notifier
	Gate      *service.OwnershipGate
	Config    Config
}

// UseCase is the step wizard controller for one identity. Step actions are
// asynchronous at the caller's discretion but at most one invocation per
// action may be in flight; a concurrent second call is rejected with
// model.ErrStepInFlight. Every action checks its preconditions before any
// external call, persists its record before exposing it, and catches
// failures at this boundary: an error is journaled, surfaced verbatim
// through the notifier, and leaves all prior state untouched.
type UseCase struct {
	mu      sync.Mutex
	running map[string]bool

	identity model.Identity
	wizard   *wizardmodel.Wizard
	deps     Deps
}

// New builds a controller for the signer's identity, rehydrating the wizard
// from persisted records so a session resumes where it left off.
func New(ctx context.Context, deps Deps) (*UseCase, error) {
	if deps.Snapshots == nil {
		return nil, fmt.Errorf("snapshot repository is required")
	}
	if deps.Signer == nil {
		return nil, model.ErrNotConnected
	}

	identity := deps.Signer.Address()
	if identity.IsZero() {
		return nil, model.ErrNotConnected
	}

	var (
		hat    record.HatRecord
		guild  record.GuildRecord
		bot    record.BotAttestation
		reward record.RewardRecord

		hatP    *record.HatRecord
		guildP  *record.GuildRecord
		botP    *record.BotAttestation
		rewardP *record.RewardRecord
	)

	if found, err := deps.Snapshots.Load(ctx, identity, model.StepKindHat, &hat); err != nil {
		return nil, fmt.Errorf("load hat record: %w", err)
	} else if found {
		hatP = &hat
	}
	if found, err := deps.Snapshots.Load(ctx, identity, model.StepKindGuild, &guild); err != nil {
		return nil, fmt.Errorf("load guild record: %w", err)
	} else if found {
		guildP = &guild
	}
	if found, err := deps.Snapshots.Load(ctx, identity, model.StepKindBot, &bot); err != nil {
		return nil, fmt.Errorf("load bot attestation: %w", err)
	} else if found {
		botP = &bot
	}
	if found, err := deps.Snapshots.Load(ctx, identity, model.StepKindReward, &reward); err != nil {
		return nil, fmt.Errorf("load reward record: %w", err)
	} else if found {
		rewardP = &reward
	}

	w, err := wizardmodel.Rehydrate(identity, hatP, guildP, botP, rewardP)
	if err != nil {
		return nil, err
	}

	return &UseCase{
		running:  make(map[string]bool),
		identity: identity,
		wizard:   w,
		deps:     deps,
	}, nil
}

// Identity returns the identity the controller is bound to
func (u *UseCase) Identity() model.Identity {
	return u.identity
}

// begin marks an action as in flight, rejecting a concurrent second call
func (u *UseCase) begin(action string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.running[action] {
		return fmt.Errorf("%w: %s", model.ErrStepInFlight, action)
	}
	u.running[action] = true
	return nil
}

// end clears an action's in-flight flag
func (u *UseCase) end(action string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.running, action)
}

// report journals an action outcome and surfaces it through the notifier.
// Journal failures are logged, never propagated.
func (u *UseCase) report(ctx context.Context, action string, ok bool, message string) {
	if u.deps.Journal != nil {
		entry := repository.JournalEntry{
			ID:        ulid.Make().String(),
			Timestamp: time.Now().UTC(),
			Identity:  u.identity.String(),
			Step:      action,
			OK:        ok,
			Message:   message,
		}
		if err := u.deps.Journal.Append(ctx, entry); err != nil {
			app.GetLogger().Warn("journal append failed: %v", err)
		}
	}

	if u.deps.Notifier == nil {
		return
	}
	if ok {
		u.deps.Notifier.Success(message)
	} else {
		u.deps.Notifier.Error(message)
	}
}

// Advance moves to the next step if the current step's record satisfies its
// predicate.
func (u *UseCase) Advance() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.wizard.Advance()
}

// Retreat moves back one step; completed work is never cleared.
func (u *UseCase) Retreat() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.wizard.Retreat()
}

// CanAdvance reports whether the current step's predicate is satisfied
func (u *UseCase) CanAdvance() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.wizard.CanAdvance()
}

// Status returns a snapshot of the wizard for presentation
func (u *UseCase) Status() dto.WizardStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	st := dto.WizardStatus{
		Identity:  u.identity.String(),
		StepIndex: u.wizard.StepIndex(),
		Completed: u.wizard.Completed(),
	}
	for i, kind := range model.StepKinds() {
		st.Steps = append(st.Steps, dto.StepStatus{
			Index:     i,
			Kind:      kind.String(),
			Title:     stepTitles[i],
			Satisfied: u.wizard.SatisfiesStep(i),
			Current:   !u.wizard.Completed() && i == u.wizard.StepIndex(),
		})
	}

	if hat := u.wizard.Hat(); hat != nil {
		st.HatName = hat.Name
		st.HatID = hat.PrettyID
	}
	if guild := u.wizard.Guild(); guild != nil {
		st.GuildName = guild.Name
		st.GuildURL = guild.URLName
	}
	if reward := u.wizard.Reward(); reward != nil {
		st.ServerID = reward.ServerID
		st.RoleID = reward.RoleID
	}
	return st
}

// Reset deletes every persisted record for the identity and restarts the
// wizard at step 0.
func (u *UseCase) Reset(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.deps.Snapshots.DeleteAll(ctx, u.identity); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	w, err := wizardmodel.New(u.identity)
	if err != nil {
		return err
	}
	u.wizard = w
	return nil
}
