package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/r-amiri/anchor-basset-reward/consumer"
	"github.com/r-amiri/anchor-basset-reward/internal/config"
	"github.com/r-amiri/anchor-basset-reward/internal/observability/tracing"
	"github.com/r-amiri/anchor-basset-reward/internal/types"
)

const (
	swapRoutingKey     = "instruction.swap"
	transferRoutingKey = "instruction.transfer"
)

// QueueManager owns both queue directions: it consumes inbound execute
// messages one at a time, preserving the host-ledger property that
// state-mutating invocations are serialized, and publishes outbound
// instructions fire-and-forget.
type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
	quit    chan struct{}
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s/", cfg.User, cfg.Password, cfg.Url)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// prefetch 1: the next invocation is delivered only after the current
	// one is acked
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set channel qos: %w", err)
	}

	if _, err := channel.QueueDeclare(
		cfg.ExecuteQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare execute queue: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.InstructionExchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare instruction exchange: %w", err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
		quit:    make(chan struct{}),
	}, nil
}

// Start consumes execute messages until the context is canceled or Stop is
// called. Handler failures are terminal for the delivery: the message is
// acked either way and never requeued, retry being an external operational
// decision.
func (qm *QueueManager) Start(ctx context.Context, handler consumer.ExecuteHandler) error {
	deliveries, err := qm.channel.Consume(
		qm.cfg.ExecuteQueue,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming execute queue: %w", err)
	}

	log.Ctx(ctx).Info().Str("queue", qm.cfg.ExecuteQueue).Msg("Starting execute message consumer")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-qm.quit:
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("execute delivery channel closed")
			}
			qm.handleDelivery(ctx, delivery, handler)
		}
	}
}

func (qm *QueueManager) handleDelivery(ctx context.Context, delivery amqp.Delivery, handler consumer.ExecuteHandler) {
	ctx = tracing.InjectTraceID(ctx)
	ctx, cancel := context.WithTimeout(ctx, qm.cfg.ProcessingTimeout)
	defer cancel()

	logger := log.Ctx(ctx)

	msg, err := types.ParseExecuteMsg(delivery.Body)
	if err != nil {
		logger.Error().Err(err).Msg("dropping undecodable execute message")
		qm.ack(ctx, delivery)
		return
	}

	if _, err := handler(ctx, msg); err != nil {
		logger.Error().Err(err).
			Str("kind", msg.Kind.String()).
			Str("sender", msg.Sender).
			Msg("invocation failed")
	}

	qm.ack(ctx, delivery)
}

func (qm *QueueManager) ack(ctx context.Context, delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to ack delivery")
	}
}

func (qm *QueueManager) EmitSwap(ctx context.Context, instruction types.SwapInstruction) error {
	return qm.publish(ctx, swapRoutingKey, instruction)
}

func (qm *QueueManager) EmitTransfer(ctx context.Context, instruction types.TransferInstruction) error {
	return qm.publish(ctx, transferRoutingKey, instruction)
}

func (qm *QueueManager) publish(ctx context.Context, routingKey string, instruction any) error {
	body, err := json.Marshal(instruction)
	if err != nil {
		return fmt.Errorf("failed to encode instruction: %w", err)
	}

	return qm.channel.PublishWithContext(
		ctx,
		qm.cfg.InstructionExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.New().String(),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (qm *QueueManager) Stop() error {
	close(qm.quit)
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all
// resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close connection")
	}
}
