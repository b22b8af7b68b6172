package workflow

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/pool"
	"encore.app/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
	PoolBusiness pool.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business, poolBusiness pool.Business) {
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
		PoolBusiness: poolBusiness,
	}
}

// ExecuteScheduledPaymentActivity executes one due payment on behalf of the
// bill's payer. Precondition failures (bill paused or cancelled, payment not
// due, insufficient balance) are logged and swallowed so the schedule keeps
// advancing; the due-bill sweep retries underfunded payments later.
func ExecuteScheduledPaymentActivity(ctx context.Context, billID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing scheduled payment activity", "billID", billID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	dueBill, err := activityDeps.BillBusiness.GetBill(ctx, billID)
	if err != nil {
		logger.Error("Failed to load bill", "billID", billID, "error", err)
		return err
	}
	if dueBill.Status != model.BillStatusActive {
		logger.Info("Skipping payment for inactive bill", "billID", billID, "status", dueBill.Status)
		return nil
	}

	payment, err := activityDeps.BillBusiness.ExecutePayment(ctx, billID, dueBill.Payer)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && (e.Code == errs.InvalidArgument || e.Code == errs.FailedPrecondition) {
			logger.Warn("Skipping scheduled payment", "billID", billID, "reason", e.Message)
			return nil
		}

		logger.Error("Failed to execute scheduled payment", "billID", billID, "error", err)
		return err
	}

	logger.Info("Successfully executed scheduled payment", "billID", billID, "paymentID", payment.ID)
	return nil
}

// RefundExpiredPaymentActivity returns an escrowed payment to the payer after
// the confirmation window lapsed without payee confirmation.
func RefundExpiredPaymentActivity(ctx context.Context, paymentID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing escrow refund activity", "paymentID", paymentID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.BillBusiness.RefundExpiredPayment(ctx, paymentID)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
			logger.Info("Payment no longer refundable", "paymentID", paymentID, "reason", e.Message)
			return nil
		}

		logger.Error("Failed to refund expired payment", "paymentID", paymentID, "error", err)
		return err
	}

	logger.Info("Successfully refunded expired payment", "paymentID", paymentID)
	return nil
}

// ExpirePoolActivity refunds and cancels a pool whose deadline lapsed. Pools
// already completed or cancelled fail the precondition and are skipped.
func ExpirePoolActivity(ctx context.Context, poolID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing pool expiry activity", "poolID", poolID)

	if activityDeps == nil || activityDeps.PoolBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.PoolBusiness.ExpirePool(ctx, poolID)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
			logger.Info("Pool no longer expirable", "poolID", poolID, "reason", e.Message)
			return nil
		}

		logger.Error("Failed to expire pool", "poolID", poolID, "error", err)
		return err
	}

	logger.Info("Successfully expired pool", "poolID", poolID)
	return nil
}
