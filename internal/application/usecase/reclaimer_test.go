package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoshare/internal/domain/repository/broker"
)

func feed(messages ...*MockMessage) <-chan broker.Message {
	ch := make(chan broker.Message, len(messages))
	for _, m := range messages {
		ch <- m
	}
	close(ch)

	return ch
}

func TestReclaimer_Run(t *testing.T) {
	t.Parallel()

	orphan := &MockMessage{body: "orphan.jpg"}
	orphan.On("Ack").Return(nil).Once()

	live := &MockMessage{body: "live.jpg"}
	live.On("Ack").Return(nil).Once()

	unreachable := &MockMessage{body: "later.jpg"}
	unreachable.On("Nack").Return(nil).Once()

	stuck := &MockMessage{body: "stuck.jpg"}
	stuck.On("Nack").Return(nil).Once()

	empty := &MockMessage{body: ""}
	empty.On("Ack").Return(nil).Once()

	receiver := new(MockReceiver)
	receiver.On("Messages", mock.Anything, "worker-1").Return(feed(orphan, live, unreachable, stuck, empty), nil)

	index := new(MockKeyIndex)
	index.On("IsReferenced", mock.Anything, "orphan.jpg").Return(false, nil)
	index.On("IsReferenced", mock.Anything, "live.jpg").Return(true, nil)
	index.On("IsReferenced", mock.Anything, "later.jpg").Return(false, errors.New("db down"))
	index.On("IsReferenced", mock.Anything, "stuck.jpg").Return(false, nil)

	remover := new(MockMinioRemover)
	remover.On("Remove", mock.Anything, "orphan.jpg").Return(nil).Once()
	remover.On("Remove", mock.Anything, "stuck.jpg").Return(errors.New("store down")).Once()

	reclaimer := NewReclaimer(receiver, index, remover, ReclaimerConfig{ConsumerName: "worker-1"})
	require.NoError(t, reclaimer.Run(context.Background()))

	for _, m := range []*MockMessage{orphan, live, unreachable, stuck, empty} {
		m.AssertExpectations(t)
	}
	orphan.AssertNotCalled(t, "Nack")
	stuck.AssertNotCalled(t, "Ack")
	remover.AssertNotCalled(t, "Remove", mock.Anything, "live.jpg")
	remover.AssertExpectations(t)
}

func TestReclaimer_ReceiverError(t *testing.T) {
	t.Parallel()

	receiver := new(MockReceiver)
	receiver.On("Messages", mock.Anything, DefaultConsumerName).Return(nil, errors.New("redis not initialized"))

	err := NewReclaimer(receiver, new(MockKeyIndex), new(MockMinioRemover), ReclaimerConfig{}).
		Run(context.Background())
	assert.Error(t, err)
}
