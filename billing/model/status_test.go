package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillStatusTransitions(t *testing.T) {
	assert.True(t, BillStatusActive.CanTransitionTo(BillStatusPaused))
	assert.True(t, BillStatusActive.CanTransitionTo(BillStatusCancelled))
	assert.True(t, BillStatusActive.CanTransitionTo(BillStatusCompleted))
	assert.True(t, BillStatusPaused.CanTransitionTo(BillStatusActive))
	assert.True(t, BillStatusPaused.CanTransitionTo(BillStatusCancelled))

	assert.False(t, BillStatusPaused.CanTransitionTo(BillStatusCompleted))
	assert.False(t, BillStatusCancelled.CanTransitionTo(BillStatusActive))
	assert.False(t, BillStatusCompleted.CanTransitionTo(BillStatusActive))

	assert.False(t, BillStatusActive.Terminal())
	assert.False(t, BillStatusPaused.Terminal())
	assert.True(t, BillStatusCancelled.Terminal())
	assert.True(t, BillStatusCompleted.Terminal())
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusEscrowed))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusEscrowed.CanTransitionTo(PaymentStatusConfirmed))
	assert.True(t, PaymentStatusEscrowed.CanTransitionTo(PaymentStatusRefunded))

	assert.False(t, PaymentStatusPending.CanTransitionTo(PaymentStatusConfirmed))
	assert.False(t, PaymentStatusConfirmed.CanTransitionTo(PaymentStatusRefunded))
	assert.False(t, PaymentStatusRefunded.CanTransitionTo(PaymentStatusEscrowed))

	assert.True(t, PaymentStatusConfirmed.Terminal())
	assert.True(t, PaymentStatusFailed.Terminal())
	assert.True(t, PaymentStatusRefunded.Terminal())
	assert.False(t, PaymentStatusEscrowed.Terminal())
}

func TestPoolStatusTransitions(t *testing.T) {
	assert.True(t, PoolStatusActive.CanTransitionTo(PoolStatusCompleted))
	assert.True(t, PoolStatusActive.CanTransitionTo(PoolStatusCancelled))

	assert.False(t, PoolStatusCompleted.CanTransitionTo(PoolStatusActive))
	assert.False(t, PoolStatusCancelled.CanTransitionTo(PoolStatusCompleted))

	assert.True(t, PoolStatusCompleted.Terminal())
	assert.True(t, PoolStatusCancelled.Terminal())
	assert.False(t, PoolStatusActive.Terminal())
}

func TestPoolFullyFunded(t *testing.T) {
	pool := &Pool{TotalAmount: 10000, CollectedAmount: 9999}
	assert.False(t, pool.FullyFunded())

	pool.CollectedAmount = 10000
	assert.True(t, pool.FullyFunded())
}

func TestBillOneTime(t *testing.T) {
	assert.True(t, (&Bill{Frequency: 0}).OneTime())
	assert.False(t, (&Bill{Frequency: 3600}).OneTime())
}
