package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	set, err := Resolve("param_message_2_carry_2_compact_pk")
	require.NoError(t, err)
	assert.Equal(t, MessageTwoCarryTwoCompactPK, set)
	assert.Equal(t, "PARAM_MESSAGE_2_CARRY_2_COMPACT_PK", set.Name())
}

func TestResolve_CaseInsensitive(t *testing.T) {
	names := []string{
		"param_small_message_2_carry_2_compact_pk",
		"PARAM_SMALL_MESSAGE_2_CARRY_2_COMPACT_PK",
		"Param_Small_Message_2_Carry_2_Compact_Pk",
	}
	for _, name := range names {
		set, err := Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, SmallMessageTwoCarryTwoCompactPK, set, name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("param_message_3_carry_3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSet)
	assert.Contains(t, err.Error(), "param_message_3_carry_3")
	assert.Contains(t, err.Error(), "known: param_message_2_carry_2_compact_pk, param_small_message_2_carry_2_compact_pk")

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrUnknownSet)
}

func TestAll(t *testing.T) {
	sets := All()
	require.Len(t, sets, 2)
	assert.Equal(t, MessageTwoCarryTwoCompactPK.ID, sets[0].ID)
	assert.Equal(t, SmallMessageTwoCarryTwoCompactPK.ID, sets[1].ID)

	// Mutating the returned slice must not leak into the registry.
	sets[0].Label = "changed"
	again, err := Resolve(MessageTwoCarryTwoCompactPK.ID)
	require.NoError(t, err)
	assert.Equal(t, "PARAM_MESSAGE_2_CARRY_2_COMPACT_PK", again.Label)
}

func TestDefaultResolver(t *testing.T) {
	set, err := Default.Resolve("PARAM_MESSAGE_2_CARRY_2_COMPACT_PK")
	require.NoError(t, err)
	assert.Equal(t, MessageTwoCarryTwoCompactPK.ID, set.ID)
}
