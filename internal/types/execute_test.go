package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-amiri/anchor-basset-reward/internal/types"
	"github.com/r-amiri/anchor-basset-reward/testutil"
)

func TestParseExecuteMsg(t *testing.T) {
	sender, err := testutil.RandomAddress("terra")
	require.NoError(t, err)
	receiver, err := testutil.RandomAddress("terra")
	require.NoError(t, err)

	t.Run("trigger swap", func(t *testing.T) {
		msg, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind:   types.ExecuteTriggerSwap,
			Sender: sender,
		}))
		require.NoError(t, err)
		assert.Equal(t, types.ExecuteTriggerSwap, msg.Kind)
		assert.Equal(t, sender, msg.Sender)
	})

	t.Run("send reward", func(t *testing.T) {
		msg, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind:     types.ExecuteSendReward,
			Sender:   sender,
			Receiver: receiver,
			Amount:   "1000",
		}))
		require.NoError(t, err)
		assert.Equal(t, receiver, msg.Receiver)
		assert.Equal(t, "1000", msg.Amount)
	})

	t.Run("send reward without receiver", func(t *testing.T) {
		_, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind:   types.ExecuteSendReward,
			Sender: sender,
			Amount: "1000",
		}))
		require.ErrorContains(t, err, "requires a receiver")
	})

	t.Run("send reward without amount", func(t *testing.T) {
		_, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind:     types.ExecuteSendReward,
			Sender:   sender,
			Receiver: receiver,
		}))
		require.ErrorContains(t, err, "requires an amount")
	})

	t.Run("balance change without amount", func(t *testing.T) {
		for _, kind := range []types.ExecuteKind{
			types.ExecuteIncreaseBalance,
			types.ExecuteDecreaseBalance,
		} {
			_, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
				Kind:   kind,
				Sender: sender,
			}))
			require.ErrorContains(t, err, "requires an amount")
		}
	})

	t.Run("missing sender", func(t *testing.T) {
		_, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind: types.ExecuteUpdateGlobalIndex,
		}))
		require.ErrorContains(t, err, "requires a sender")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := types.ParseExecuteMsg(encode(t, types.ExecuteMsg{
			Kind:   "burn_everything",
			Sender: sender,
		}))
		require.ErrorContains(t, err, "unknown execute message kind")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := types.ParseExecuteMsg([]byte("not-json"))
		require.ErrorContains(t, err, "failed to decode")
	})
}

func encode(t *testing.T, msg types.ExecuteMsg) []byte {
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return data
}
