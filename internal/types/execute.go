package types

import (
	"encoding/json"
	"fmt"
)

// Enum values for execute message kinds
type ExecuteKind string

const (
	ExecuteTriggerSwap       ExecuteKind = "trigger_swap"
	ExecuteUpdateGlobalIndex ExecuteKind = "update_global_index"
	ExecuteSendReward        ExecuteKind = "send_reward"
	ExecuteIncreaseBalance   ExecuteKind = "increase_balance"
	ExecuteDecreaseBalance   ExecuteKind = "decrease_balance"
)

func (k ExecuteKind) String() string {
	return string(k)
}

// ExecuteMsg is the envelope of an inbound invocation. Sender is the bech32
// address of the caller as authenticated by the transport.
type ExecuteMsg struct {
	Kind   ExecuteKind `json:"kind"`
	Sender string      `json:"sender"`
	// Receiver and Amount are set for send_reward; Amount alone for
	// increase_balance / decrease_balance.
	Receiver string `json:"receiver,omitempty"`
	Amount   string `json:"amount,omitempty"`
}

// ParseExecuteMsg decodes and validates an execute envelope.
func ParseExecuteMsg(data []byte) (*ExecuteMsg, error) {
	var msg ExecuteMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode execute message: %w", err)
	}

	switch msg.Kind {
	case ExecuteTriggerSwap, ExecuteUpdateGlobalIndex:
	case ExecuteSendReward:
		if msg.Receiver == "" {
			return nil, fmt.Errorf("send_reward requires a receiver")
		}
		if msg.Amount == "" {
			return nil, fmt.Errorf("send_reward requires an amount")
		}
	case ExecuteIncreaseBalance, ExecuteDecreaseBalance:
		if msg.Amount == "" {
			return nil, fmt.Errorf("%s requires an amount", msg.Kind)
		}
	default:
		return nil, fmt.Errorf("unknown execute message kind %q", msg.Kind)
	}

	if msg.Sender == "" {
		return nil, fmt.Errorf("execute message requires a sender")
	}

	return &msg, nil
}
