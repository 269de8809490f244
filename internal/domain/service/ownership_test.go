package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawah/hatlink/internal/domain/model"
)

func TestNewOwnershipGate(t *testing.T) {
	_, err := NewOwnershipGate(model.OwnershipTargetTopHat)
	assert.NoError(t, err)

	_, err = NewOwnershipGate(model.OwnershipTarget("nope"))
	assert.Error(t, err)
}

func TestOwnershipGateVerify(t *testing.T) {
	identity, err := model.NewIdentity("0xABC0000000000000000000000000000000000001")
	require.NoError(t, err)

	hatWearers := []string{"0xdef0000000000000000000000000000000000002"}
	topHatWearers := []string{"0xabc0000000000000000000000000000000000001"}

	tests := []struct {
		name    string
		target  model.OwnershipTarget
		wantErr bool
	}{
		{name: "top hat wearer passes top hat gate", target: model.OwnershipTargetTopHat},
		{name: "non-wearer fails self gate", target: model.OwnershipTargetSelf, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := NewOwnershipGate(tt.target)
			require.NoError(t, err)

			err = gate.Verify(identity, hatWearers, topHatWearers)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrNotWearer)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOwnershipGateCaseInsensitive(t *testing.T) {
	identity, err := model.NewIdentity("0xAbCdEf")
	require.NoError(t, err)

	gate, err := NewOwnershipGate(model.OwnershipTargetSelf)
	require.NoError(t, err)

	assert.NoError(t, gate.Verify(identity, []string{"0xABCDEF"}, nil))
	assert.ErrorIs(t, gate.Verify(identity, []string{"0x123456"}, nil), model.ErrNotWearer)
}

func TestOwnershipGateEmptyWearerList(t *testing.T) {
	identity, err := model.NewIdentity("0xabc")
	require.NoError(t, err)

	gate, err := NewOwnershipGate(model.OwnershipTargetTopHat)
	require.NoError(t, err)

	assert.ErrorIs(t, gate.Verify(identity, nil, nil), model.ErrNotWearer)
}
