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

type ExecutePaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	Actor          string `header:"X-Wallet-Address" json:"-" validate:"required"`
}

type PaymentResponse struct {
	Payment model.Payment `json:"payment"`
}

// ExecutePayment escrows one due payment of the bill. Funds leave the
// payer's available balance immediately and sit in escrow until the payee
// confirms or the confirmation window lapses.
//
//encore:api public path=/v1/bills/:id/payments method=POST tag:idempotency
func (s *Service) ExecutePayment(ctx context.Context, id int64, req *ExecutePaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	payment, err := s.bills.ExecutePayment(ctx, id, req.Actor)
	if err != nil {
		rlog.Error("failed to execute payment", "error", err, "bill_id", id)
		return nil, err
	}

	// Watch the confirmation deadline so an unconfirmed escrow refunds itself
	if wfErr := s.startEscrowDeadlineWorkflow(ctx, payment); wfErr != nil {
		rlog.Error("workflow start issue", "payment_id", payment.ID, "error", wfErr)
	}

	return &PaymentResponse{
		Payment: *payment,
	}, nil
}

// Validate implements validation for ExecutePaymentRequest
func (r *ExecutePaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// startEscrowDeadlineWorkflow starts the workflow watching one escrowed payment
func (s *Service) startEscrowDeadlineWorkflow(ctx context.Context, payment *model.Payment) error {
	workflowID := fmt.Sprintf("escrow-%d", payment.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.EscrowDeadlineParams{
		PaymentID: payment.ID,
		Deadline:  payment.ConfirmationDeadline,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.EscrowDeadline, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "payment_id", payment.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
