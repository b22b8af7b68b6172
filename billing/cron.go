package billing

import (
	"context"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/cron"
	"encore.dev/rlog"
)

// The sweeps backstop the Temporal workflows: a payment missed because a
// workflow was down, an escrow whose deadline workflow never fired, or a pool
// that lapsed without anyone claiming a refund all get picked up here.

var _ = cron.NewJob("sweep-due-bills", cron.JobConfig{
	Title:    "Execute due bill payments",
	Every:    10 * cron.Minute,
	Endpoint: (*Service).SweepDueBills,
})

var _ = cron.NewJob("sweep-expired-escrows", cron.JobConfig{
	Title:    "Refund lapsed payment escrows",
	Every:    1 * cron.Hour,
	Endpoint: (*Service).SweepExpiredEscrows,
})

var _ = cron.NewJob("sweep-expired-pools", cron.JobConfig{
	Title:    "Refund and close lapsed pools",
	Every:    1 * cron.Hour,
	Endpoint: (*Service).SweepExpiredPools,
})

const sweepBatchSize = 100

type SweepResponse struct {
	Processed int `json:"processed"`
}

//encore:api private method=POST path=/internal/sweeps/due-bills
func (s *Service) SweepDueBills(ctx context.Context) (*SweepResponse, error) {
	dueBills, err := s.bills.ListDueBills(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		rlog.Error("failed to list due bills", "error", err)
		return nil, err
	}

	var executed int
	for _, dueBill := range dueBills {
		_, err := s.bills.ExecutePayment(ctx, dueBill.ID, dueBill.Payer)
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) && (e.Code == errs.InvalidArgument || e.Code == errs.FailedPrecondition) {
				rlog.Warn("skipping due bill", "bill_id", dueBill.ID, "reason", e.Message)
				continue
			}

			rlog.Error("failed to execute due payment", "bill_id", dueBill.ID, "error", err)
			return nil, err
		}
		executed++
	}

	if executed > 0 {
		rlog.Info("due bill sweep completed", "executed", executed)
	}
	return &SweepResponse{Processed: executed}, nil
}

//encore:api private method=POST path=/internal/sweeps/expired-escrows
func (s *Service) SweepExpiredEscrows(ctx context.Context) (*SweepResponse, error) {
	refunded, err := s.bills.RefundExpiredEscrows(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		rlog.Error("failed to sweep expired escrows", "error", err, "refunded", refunded)
		return nil, err
	}

	if refunded > 0 {
		rlog.Info("escrow sweep completed", "refunded", refunded)
	}
	return &SweepResponse{Processed: refunded}, nil
}

//encore:api private method=POST path=/internal/sweeps/expired-pools
func (s *Service) SweepExpiredPools(ctx context.Context) (*SweepResponse, error) {
	swept, err := s.pools.RefundExpiredPools(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		rlog.Error("failed to sweep expired pools", "error", err, "swept", swept)
		return nil, err
	}

	if swept > 0 {
		rlog.Info("pool sweep completed", "swept", swept)
	}
	return &SweepResponse{Processed: swept}, nil
}
