package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/billing/model"
)

// BillScheduleParams contains parameters for starting the bill schedule workflow
type BillScheduleParams struct {
	BillID            int64     `json:"bill_id"`
	FrequencySeconds  int64     `json:"frequency_seconds"`
	TotalPayments     int32     `json:"total_payments"`
	CompletedPayments int32     `json:"completed_payments"`
	NextPaymentAt     time.Time `json:"next_payment_at"`
}

// BillSchedule drives the payment cadence of one bill. Each cycle it waits
// until the next payment is due, executes it through an activity, then
// advances by the bill frequency. Status signals pause, resume or end the
// schedule; one-time bills finish after a single payment.
func BillSchedule(ctx workflow.Context, params BillScheduleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting bill schedule workflow", "billID", params.BillID, "totalPayments", params.TotalPayments, "nextPaymentAt", params.NextPaymentAt)

	statusCh := workflow.GetSignalChannel(ctx, BillStatusSignalName)

	remaining := params.TotalPayments - params.CompletedPayments
	nextDue := params.NextPaymentAt
	paused := false

	for remaining > 0 {
		var timer workflow.Future
		now := workflow.Now(ctx)
		if !paused {
			waitDuration := nextDue.Sub(now)
			if waitDuration < 0 {
				waitDuration = 0
			}
			timer = workflow.NewTimer(ctx, waitDuration)
		}

		fired := false
		ended := false

		selector := workflow.NewSelector(ctx)

		selector.AddReceive(statusCh, func(c workflow.ReceiveChannel, more bool) {
			var signal BillStatusSignal
			c.Receive(ctx, &signal)
			logger.Info("Received bill status signal", "billID", params.BillID, "status", signal.Status, "changedBy", signal.ChangedBy)

			switch model.BillStatus(signal.Status) {
			case model.BillStatusPaused:
				paused = true
			case model.BillStatusActive:
				paused = false
			case model.BillStatusCancelled, model.BillStatusCompleted:
				ended = true
			}
		})

		if timer != nil {
			selector.AddFuture(timer, func(f workflow.Future) {
				fired = true
			})
		}

		selector.Select(ctx)

		if ended {
			logger.Info("Bill schedule ended by status change", "billID", params.BillID)
			return nil
		}
		if !fired {
			continue
		}

		err := executeScheduledPayment(ctx, params.BillID)
		if err != nil {
			logger.Error("Failed to execute scheduled payment", "billID", params.BillID, "error", err)
			return err
		}

		remaining--
		nextDue = nextDue.Add(time.Duration(params.FrequencySeconds) * time.Second)
	}

	logger.Info("Bill schedule workflow completed", "billID", params.BillID)
	return nil
}

// executeScheduledPayment executes the ExecuteScheduledPayment activity
func executeScheduledPayment(ctx workflow.Context, billID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ExecuteScheduledPaymentActivity, billID).Get(ctx, nil)
}
