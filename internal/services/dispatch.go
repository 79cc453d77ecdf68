package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/r-amiri/anchor-basset-reward/internal/observability/metrics"
	"github.com/r-amiri/anchor-basset-reward/internal/observability/tracing"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

// ProcessExecuteMsg routes one inbound invocation to its handler and, on
// success, publishes the resulting instructions and emits the audit record.
// A handler failure commits nothing and publishes nothing.
func (s *Service) ProcessExecuteMsg(ctx context.Context, msg *types.ExecuteMsg) (*types.InvocationResult, error) {
	ctx = tracing.WithOperation(ctx, msg.Kind.String())

	start := time.Now()
	result, err := s.dispatch(ctx, msg)
	metrics.RecordInvocationDuration(time.Since(start), msg.Kind.String(), err != nil)
	if err != nil {
		return nil, err
	}

	if err := s.emitInstructions(ctx, result); err != nil {
		return nil, err
	}

	auditLog(ctx, result)
	return result, nil
}

func (s *Service) dispatch(ctx context.Context, msg *types.ExecuteMsg) (*types.InvocationResult, error) {
	switch msg.Kind {
	case types.ExecuteTriggerSwap:
		return s.TriggerSwap(ctx, msg.Sender)
	case types.ExecuteUpdateGlobalIndex:
		return s.UpdateGlobalIndex(ctx, msg.Sender)
	case types.ExecuteSendReward:
		amount, err := parseAmount(msg.Amount)
		if err != nil {
			return nil, err
		}
		return s.SendReward(ctx, msg.Sender, msg.Receiver, amount)
	case types.ExecuteIncreaseBalance:
		amount, err := parseAmount(msg.Amount)
		if err != nil {
			return nil, err
		}
		return s.IncreaseBalance(ctx, msg.Sender, amount)
	case types.ExecuteDecreaseBalance:
		amount, err := parseAmount(msg.Amount)
		if err != nil {
			return nil, err
		}
		return s.DecreaseBalance(ctx, msg.Sender, amount)
	default:
		return nil, fmt.Errorf("unknown execute message kind %q", msg.Kind)
	}
}

// emitInstructions publishes the instructions of a committed invocation.
// The state write is the commit point; a publish failure afterwards is
// surfaced to the caller and counted, but the committed state stands.
func (s *Service) emitInstructions(ctx context.Context, result *types.InvocationResult) error {
	for _, swap := range result.Swaps {
		if err := s.emitter.EmitSwap(ctx, swap); err != nil {
			metrics.IncInstructionPublishFailures()
			return fmt.Errorf("failed to publish swap instruction: %w", err)
		}
	}
	for _, transfer := range result.Transfers {
		if err := s.emitter.EmitTransfer(ctx, transfer); err != nil {
			metrics.IncInstructionPublishFailures()
			return fmt.Errorf("failed to publish transfer instruction: %w", err)
		}
	}
	return nil
}

func auditLog(ctx context.Context, result *types.InvocationResult) {
	event := log.Ctx(ctx).Info().
		Int("swaps", len(result.Swaps)).
		Int("transfers", len(result.Transfers))
	event = attributesDict(event, result.Attributes)
	event.Msg("invocation succeeded")
}

func attributesDict(event *zerolog.Event, attributes []types.Attribute) *zerolog.Event {
	dict := zerolog.Dict()
	for _, attr := range attributes {
		dict = dict.Str(attr.Key, attr.Value)
	}
	return event.Dict("attributes", dict)
}

func parseAmount(raw string) (sdkmath.Int, error) {
	amount, ok := sdkmath.NewIntFromString(raw)
	if !ok {
		return sdkmath.Int{}, &types.InvalidAmountError{Amount: raw}
	}
	return amount, nil
}
