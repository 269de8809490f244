package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

func testIdentity(t *testing.T) model.Identity {
	t.Helper()
	id, err := model.NewIdentity("0xABCdef0123456789")
	require.NoError(t, err)
	return id
}

func TestNew(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)

	assert.Equal(t, 0, w.StepIndex())
	assert.False(t, w.Completed())
	assert.Equal(t, model.StepKindHat, w.CurrentKind())

	_, err = New(model.Identity{})
	assert.ErrorIs(t, err, model.ErrNotConnected)
}

func TestCanAdvanceRequiresRecord(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)

	assert.False(t, w.CanAdvance())
	assert.ErrorIs(t, w.Advance(), model.ErrMissingPrerequisite)
	assert.Equal(t, 0, w.StepIndex())

	w.SetHat(&record.HatRecord{Name: "Operator"})
	assert.True(t, w.CanAdvance())
	require.NoError(t, w.Advance())
	assert.Equal(t, 1, w.StepIndex())
}

func TestStepPredicates(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)

	assert.False(t, w.SatisfiesStep(0))
	w.SetHat(&record.HatRecord{})
	assert.True(t, w.SatisfiesStep(0))

	assert.False(t, w.SatisfiesStep(1))
	w.SetGuild(&record.GuildRecord{ID: 1})
	assert.True(t, w.SatisfiesStep(1))

	// the bot predicate requires a positive attestation, not just presence
	w.SetBot(&record.BotAttestation{Added: false})
	assert.False(t, w.SatisfiesStep(2))
	w.SetBot(&record.BotAttestation{Added: true})
	assert.True(t, w.SatisfiesStep(2))

	assert.False(t, w.SatisfiesStep(3))
	assert.False(t, w.SatisfiesStep(7))
}

func TestRetreatThenAdvanceRestoresState(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)

	hat := &record.HatRecord{Name: "Operator"}
	guild := &record.GuildRecord{ID: 9, GuildRoleID: 3}
	w.SetHat(hat)
	require.NoError(t, w.Advance())
	w.SetGuild(guild)

	require.NoError(t, w.Retreat())
	assert.Equal(t, 0, w.StepIndex())
	// retreating never destroys completed work
	assert.Same(t, guild, w.Guild())
	assert.Same(t, hat, w.Hat())

	require.NoError(t, w.Advance())
	assert.Equal(t, 1, w.StepIndex())
}

func TestRetreatFromInitialStepFails(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)
	assert.Error(t, w.Retreat())
}

func TestFullProgressionToCompleted(t *testing.T) {
	w, err := New(testIdentity(t))
	require.NoError(t, err)

	w.SetHat(&record.HatRecord{})
	require.NoError(t, w.Advance())
	w.SetGuild(&record.GuildRecord{})
	require.NoError(t, w.Advance())
	w.SetBot(&record.BotAttestation{Added: true})
	require.NoError(t, w.Advance())
	assert.Equal(t, 3, w.StepIndex())

	w.SetReward(&record.RewardRecord{ServerID: "123", RoleID: "456"})
	assert.True(t, w.Completed())

	// completed is terminal
	assert.Error(t, w.Advance())
	assert.Error(t, w.Retreat())
	assert.False(t, w.CanAdvance())
}

func TestRehydrate(t *testing.T) {
	identity := testIdentity(t)

	tests := []struct {
		name          string
		hat           *record.HatRecord
		guild         *record.GuildRecord
		bot           *record.BotAttestation
		reward        *record.RewardRecord
		wantStep      int
		wantCompleted bool
	}{
		{name: "empty starts at 0", wantStep: 0},
		{name: "hat only resumes at 0", hat: &record.HatRecord{}, wantStep: 0},
		{name: "guild resumes at 1", hat: &record.HatRecord{}, guild: &record.GuildRecord{}, wantStep: 1},
		{
			name: "bot attested resumes at 2",
			hat:  &record.HatRecord{}, guild: &record.GuildRecord{},
			bot: &record.BotAttestation{Added: true}, wantStep: 2,
		},
		{
			name: "retracted attestation does not resume at 2",
			hat:  &record.HatRecord{}, guild: &record.GuildRecord{},
			bot: &record.BotAttestation{Added: false}, wantStep: 1,
		},
		{
			name:   "reward lands in completed",
			hat:    &record.HatRecord{},
			guild:  &record.GuildRecord{},
			bot:    &record.BotAttestation{Added: true},
			reward: &record.RewardRecord{ServerID: "1"},
			wantStep: 3, wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Rehydrate(identity, tt.hat, tt.guild, tt.bot, tt.reward)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStep, w.StepIndex())
			assert.Equal(t, tt.wantCompleted, w.Completed())
		})
	}
}
