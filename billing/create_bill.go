package billing

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Payer          string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Payee            string  `json:"payee" validate:"required"`
	Asset            string  `json:"asset" validate:"omitempty,uppercase,max=10"`
	Amount           int64   `json:"amount" validate:"required,min=1"`
	FrequencySeconds int64   `json:"frequency_seconds" validate:"min=0"`
	TotalPayments    int32   `json:"total_payments" validate:"required,min=1"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Category         *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*BillResponse, error) {
	asset := req.Asset
	if asset == "" {
		asset = model.DefaultAsset
	}

	result, err := s.bills.CreateBill(ctx, &model.Bill{
		Payer:          req.Payer,
		Payee:          req.Payee,
		Asset:          asset,
		Amount:         req.Amount,
		Frequency:      req.FrequencySeconds,
		TotalPayments:  req.TotalPayments,
		Description:    req.Description,
		Category:       req.Category,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create bill", "error", err)
		return nil, err
	}

	// Start Temporal workflow driving the payment schedule
	if wfErr := s.startBillScheduleWorkflow(ctx, result); wfErr != nil {
		// We intentionally do not fail the overall request, but we emit structured context
		rlog.Error("workflow start issue", "bill_id", result.ID, "workflow_id", fmt.Sprintf("bill-%s", result.IdempotencyKey), "error", wfErr)
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

// Validate implements validation for CreateBillRequest using go-playground/validator
func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.Payer == r.Payee {
		return &errs.Error{Code: errs.InvalidArgument, Message: "payer and payee must differ"}
	}

	return nil
}

// startBillScheduleWorkflow starts the Temporal workflow for the bill's payment cadence
func (s *Service) startBillScheduleWorkflow(ctx context.Context, bill *model.Bill) error {
	workflowID := fmt.Sprintf("bill-%s", bill.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.BillScheduleParams{
		BillID:            bill.ID,
		FrequencySeconds:  bill.Frequency,
		TotalPayments:     bill.TotalPayments,
		CompletedPayments: bill.CompletedPayments,
		NextPaymentAt:     bill.NextPaymentAt,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillSchedule, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "bill_id", bill.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
