package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercases address", input: "0xAbC123DEF", want: "0xabc123def"},
		{name: "trims whitespace", input: "  0xabc  ", want: "0xabc"},
		{name: "rejects empty", input: "", wantErr: true},
		{name: "rejects whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIdentity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
			assert.False(t, id.IsZero())
		})
	}
}

func TestIdentityEquals(t *testing.T) {
	a, err := NewIdentity("0xABC")
	require.NoError(t, err)
	b, err := NewIdentity("0xabc")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.True(t, Identity{}.IsZero())
}

func TestStepKindIsValid(t *testing.T) {
	for _, k := range StepKinds() {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}
	assert.False(t, StepKind("unknown").IsValid())
}

func TestStepKindsOrder(t *testing.T) {
	kinds := StepKinds()
	require.Len(t, kinds, 4)
	assert.Equal(t, StepKindHat, kinds[0])
	assert.Equal(t, StepKindGuild, kinds[1])
	assert.Equal(t, StepKindBot, kinds[2])
	assert.Equal(t, StepKindReward, kinds[3])
}

func TestOwnershipTargetIsValid(t *testing.T) {
	assert.True(t, OwnershipTargetTopHat.IsValid())
	assert.True(t, OwnershipTargetSelf.IsValid())
	assert.False(t, OwnershipTarget("parent").IsValid())
}
