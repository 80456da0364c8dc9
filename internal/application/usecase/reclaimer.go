package usecase

import (
	"context"

	"photoshare/internal/domain/repository/broker"
	"photoshare/internal/domain/repository/database"
	"photoshare/internal/domain/repository/minio"
	"photoshare/pkg/logger"
)

// Reclaimer consumes orphaned blob keys and deletes the blobs no record points at.
type Reclaimer struct {
	receiver     broker.Receiver
	index        database.KeyIndex
	minioRemover minio.Remover
	consumer     string
}

func NewReclaimer(receiver broker.Receiver, index database.KeyIndex, minioRemover minio.Remover,
	cfg ReclaimerConfig,
) *Reclaimer {
	consumer := cfg.ConsumerName
	if consumer == "" {
		consumer = DefaultConsumerName
	}

	return &Reclaimer{
		receiver:     receiver,
		index:        index,
		minioRemover: minioRemover,
		consumer:     consumer,
	}
}

// Run blocks until ctx is done or the queue closes.
func (r *Reclaimer) Run(ctx context.Context) error {
	messages, err := r.receiver.Messages(ctx, r.consumer)
	if err != nil {
		return err
	}

	logger.Info("orphan reclaimer started", "consumer", r.consumer)

	for msg := range messages {
		r.handle(ctx, msg)
	}

	logger.Info("orphan reclaimer stopped", "consumer", r.consumer)

	return nil
}

// handle acks a message once its key is known to be safe; any failure leaves it pending.
func (r *Reclaimer) handle(ctx context.Context, msg broker.Message) {
	key := msg.Body()
	if key == "" {
		ack(msg)

		return
	}

	referenced, err := r.index.IsReferenced(ctx, key)
	if err != nil {
		logger.Error("failed to check blob references", "key", key, "err", err)
		nack(msg)

		return
	}

	if referenced {
		logger.Debug("queued blob is referenced, keeping it", "key", key)
		ack(msg)

		return
	}

	if err := r.minioRemover.Remove(ctx, key); err != nil {
		logger.Error("failed to reclaim orphaned blob", "key", key, "err", err)
		nack(msg)

		return
	}

	logger.Info("orphaned blob reclaimed", "key", key)
	ack(msg)
}

func ack(msg broker.Message) {
	if err := msg.Ack(); err != nil {
		logger.Error("failed to ack message", "err", err)
	}
}

func nack(msg broker.Message) {
	if err := msg.Nack(); err != nil {
		logger.Error("failed to nack message", "err", err)
	}
}
