package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// EscrowDeadlineParams contains parameters for starting the escrow deadline workflow
type EscrowDeadlineParams struct {
	PaymentID int64     `json:"payment_id"`
	Deadline  time.Time `json:"deadline"`
}

// EscrowDeadline watches one escrowed payment. If the payee confirms before
// the deadline the workflow ends quietly; otherwise the escrow is refunded to
// the payer.
func EscrowDeadline(ctx workflow.Context, params EscrowDeadlineParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting escrow deadline workflow", "paymentID", params.PaymentID, "deadline", params.Deadline)

	waitDuration := params.Deadline.Sub(workflow.Now(ctx))
	if waitDuration < 0 {
		waitDuration = 0
	}
	timer := workflow.NewTimer(ctx, waitDuration)

	confirmCh := workflow.GetSignalChannel(ctx, ConfirmPaymentSignalName)

	confirmed := false
	expired := false

	for !confirmed && !expired {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(confirmCh, func(c workflow.ReceiveChannel, more bool) {
			var signal ConfirmPaymentSignal
			c.Receive(ctx, &signal)
			logger.Info("Payment confirmed before deadline", "paymentID", params.PaymentID, "confirmedBy", signal.ConfirmedBy)
			confirmed = true
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Confirmation deadline reached, refunding escrow", "paymentID", params.PaymentID)
			expired = true
		})

		selector.Select(ctx)
	}

	if confirmed {
		return nil
	}

	err := refundExpiredPayment(ctx, params.PaymentID)
	if err != nil {
		logger.Error("Failed to refund expired escrow", "paymentID", params.PaymentID, "error", err)
		return err
	}

	logger.Info("Escrow deadline workflow completed", "paymentID", params.PaymentID)
	return nil
}

// refundExpiredPayment executes the RefundExpiredPayment activity
func refundExpiredPayment(ctx workflow.Context, paymentID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RefundExpiredPaymentActivity, paymentID).Get(ctx, nil)
}
