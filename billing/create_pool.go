package billing

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type CreatePoolRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Creator        string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Payee           string    `json:"payee" validate:"required"`
	Asset           string    `json:"asset" validate:"omitempty,uppercase,max=10"`
	TotalAmount     int64     `json:"total_amount" validate:"required,min=1"`
	MinContribution int64     `json:"min_contribution" validate:"min=0"`
	MaxContribution int64     `json:"max_contribution" validate:"min=0"`
	MaxParticipants int32     `json:"max_participants" validate:"min=0"`
	Deadline        time.Time `json:"deadline" validate:"required"`
	SplitType       string    `json:"split_type" validate:"omitempty,oneof=equal custom"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=255"`
	Category        *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	AllowPublicJoin bool      `json:"allow_public_join"`
}

type PoolResponse struct {
	Pool model.Pool `json:"pool"`
}

//encore:api public path=/v1/pools method=POST tag:idempotency
func (s *Service) CreatePool(ctx context.Context, req *CreatePoolRequest) (*PoolResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	result, err := s.pools.CreatePool(ctx, &model.Pool{
		Creator:         req.Creator,
		Payee:           req.Payee,
		Asset:           asset,
		TotalAmount:     req.TotalAmount,
		MinContribution: req.MinContribution,
		MaxContribution: req.MaxContribution,
		MaxParticipants: req.MaxParticipants,
		Deadline:        req.Deadline,
		SplitType:       model.SplitType(req.SplitType),
		Description:     req.Description,
		Category:        req.Category,
		AllowPublicJoin: req.AllowPublicJoin,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create pool", "error", err)
		return nil, err
	}

	// Start Temporal workflow enforcing the contribution deadline
	if wfErr := s.startPoolDeadlineWorkflow(ctx, result); wfErr != nil {
		// We intentionally do not fail the overall request, but we emit structured context
		rlog.Error("workflow start issue", "pool_id", result.ID, "workflow_id", fmt.Sprintf("pool-%d", result.ID), "error", wfErr)
	}

	return &PoolResponse{
		Pool: *result,
	}, nil
}

// startPoolDeadlineWorkflow starts the Temporal workflow that refunds the pool at its deadline
func (s *Service) startPoolDeadlineWorkflow(ctx context.Context, pool *model.Pool) error {
	workflowID := fmt.Sprintf("pool-%d", pool.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.PoolDeadlineParams{
		PoolID:   pool.ID,
		Deadline: pool.Deadline,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.PoolDeadline, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "pool_id", pool.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// Validate implements validation for CreatePoolRequest
func (r *CreatePoolRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !r.Deadline.After(time.Now()) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "deadline must be in the future"}
	}

	return nil
}
