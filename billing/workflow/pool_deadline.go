package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// PoolDeadlineParams contains parameters for starting the pool deadline workflow
type PoolDeadlineParams struct {
	PoolID   int64     `json:"pool_id"`
	Deadline time.Time `json:"deadline"`
}

// PoolDeadline parks until the pool's deadline, then expires the pool:
// unclaimed contributions go back to their contributors and the pool is
// cancelled. A pool completed or cancelled before the deadline makes the
// expiry a no-op.
func PoolDeadline(ctx workflow.Context, params PoolDeadlineParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting pool deadline workflow", "poolID", params.PoolID, "deadline", params.Deadline)

	waitDuration := params.Deadline.Sub(workflow.Now(ctx))
	if waitDuration < 0 {
		waitDuration = 0
	}
	if err := workflow.NewTimer(ctx, waitDuration).Get(ctx, nil); err != nil {
		return err
	}

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
	err := workflow.ExecuteActivity(activityCtx, ExpirePoolActivity, params.PoolID).Get(ctx, nil)
	if err != nil {
		logger.Error("Failed to expire pool", "poolID", params.PoolID, "error", err)
		return err
	}

	logger.Info("Pool deadline workflow completed", "poolID", params.PoolID)
	return nil
}
