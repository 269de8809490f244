package wizard

import (
	"errors"

	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// StepCount is the number of gated wizard steps
const StepCount = 4

// Wizard is the step-progression aggregate for one identity. The step index
// moves strictly linearly: Advance is gated on the current step's record,
// Retreat is unconditional from any non-initial step, and there is no jump.
// Retreating never clears a later step's record.
type Wizard struct {
	identity  model.Identity
	stepIndex int
	completed bool

	hat    *record.HatRecord
	guild  *record.GuildRecord
	bot    *record.BotAttestation
	reward *record.RewardRecord
}

// New creates a fresh wizard at step 0
func New(identity model.Identity) (*Wizard, error) {
	if identity.IsZero() {
		return nil, model.ErrNotConnected
	}
	return &Wizard{identity: identity}, nil
}

// Rehydrate rebuilds a wizard from persisted records. The step index is
// derived from the furthest record present, mirroring the resume-on-reload
// behavior: hat alone resumes at step 0, a guild at step 1, a bot
// attestation at step 2, and a reward record lands in the completed state.
func Rehydrate(
	identity model.Identity,
	hat *record.HatRecord,
	guild *record.GuildRecord,
	bot *record.BotAttestation,
	reward *record.RewardRecord,
) (*Wizard, error) {
	w, err := New(identity)
	if err != nil {
		return nil, err
	}
	w.hat = hat
	w.guild = guild
	w.bot = bot
	w.reward = reward

	switch {
	case reward != nil:
		w.stepIndex = StepCount - 1
		w.completed = true
	case bot != nil && bot.Added:
		w.stepIndex = 2
	case guild != nil:
		w.stepIndex = 1
	default:
		w.stepIndex = 0
	}
	return w, nil
}

// Identity returns the owning identity
func (w *Wizard) Identity() model.Identity {
	return w.identity
}

// StepIndex returns the current step index
func (w *Wizard) StepIndex() int {
	return w.stepIndex
}

// Completed reports whether the wizard reached its terminal state
func (w *Wizard) Completed() bool {
	return w.completed
}

// CurrentKind returns the step kind for the current index
func (w *Wizard) CurrentKind() model.StepKind {
	return model.StepKinds()[w.stepIndex]
}

// Hat returns the hat record, nil until the search step succeeds
func (w *Wizard) Hat() *record.HatRecord {
	return w.hat
}

// Guild returns the guild record, nil until guild creation succeeds
func (w *Wizard) Guild() *record.GuildRecord {
	return w.guild
}

// Bot returns the bot attestation, nil until the user confirms
func (w *Wizard) Bot() *record.BotAttestation {
	return w.bot
}

// Reward returns the reward record, nil until the final step succeeds
func (w *Wizard) Reward() *record.RewardRecord {
	return w.reward
}

// SetHat stores the hat search result
func (w *Wizard) SetHat(r *record.HatRecord) {
	w.hat = r
}

// SetGuild stores the guild creation result
func (w *Wizard) SetGuild(r *record.GuildRecord) {
	w.guild = r
}

// SetBot stores the bot attestation
func (w *Wizard) SetBot(r *record.BotAttestation) {
	w.bot = r
}

// SetReward stores the reward result and moves the wizard to its terminal
// state; the final step completes without an explicit Advance.
func (w *Wizard) SetReward(r *record.RewardRecord) {
	w.reward = r
	w.stepIndex = StepCount - 1
	w.completed = true
}

// SatisfiesStep reports whether step i's record is present and satisfies
// its predicate
func (w *Wizard) SatisfiesStep(i int) bool {
	switch i {
	case 0:
		return w.hat != nil
	case 1:
		return w.guild != nil
	case 2:
		return w.bot != nil && w.bot.Added
	case 3:
		return w.reward != nil
	default:
		return false
	}
}

// CanAdvance reports whether the current step's predicate is satisfied
func (w *Wizard) CanAdvance() bool {
	if w.completed {
		return false
	}
	return w.SatisfiesStep(w.stepIndex)
}

// Advance moves to the next step, or into the completed state from the
// last step. It fails unless the current step's record satisfies its
// predicate.
func (w *Wizard) Advance() error {
	if w.completed {
		return errors.New("wizard already completed")
	}
	if !w.CanAdvance() {
		return model.ErrMissingPrerequisite
	}
	if w.stepIndex == StepCount-1 {
		w.completed = true
		return nil
	}
	w.stepIndex++
	return nil
}

// Retreat moves back one step. It is allowed unconditionally from any
// non-initial step and never clears records. The completed state is
// terminal.
func (w *Wizard) Retreat() error {
	if w.completed {
		return errors.New("wizard already completed")
	}
	if w.stepIndex == 0 {
		return errors.New("already at the first step")
	}
	w.stepIndex--
	return nil
}
