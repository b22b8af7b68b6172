package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/workflow"
)

type ConfirmPaymentRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`

	ProofHash string `json:"proof_hash" validate:"omitempty,max=255"`
}

// ConfirmPayment releases an escrowed payment to the payee. Only the payee
// may confirm. Confirmation also refreshes the payer's reward tier.
//
//encore:api public path=/v1/payments/:id/confirm method=POST
func (s *Service) ConfirmPayment(ctx context.Context, id int64, req *ConfirmPaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}

	err := s.bills.ConfirmPayment(ctx, id, req.Actor, req.ProofHash)
	if err != nil {
		rlog.Error("failed to confirm payment", "error", err, "payment_id", id)
		return nil, err
	}

	payment, err := s.bills.GetPayment(ctx, id)
	if err != nil {
		rlog.Error("failed to get confirmed payment", "error", err, "payment_id", id)
		return nil, err
	}

	workflowID := fmt.Sprintf("escrow-%d", id)
	actor := req.Actor
	runAsync("signal-confirm-payment", func(ctx context.Context) error {
		return s.signalPaymentConfirmed(ctx, workflowID, actor)
	})

	payer := payment.Payer
	runAsync("refresh-reward", func(ctx context.Context) error {
		_, err := s.rewards.MintOrUpgrade(ctx, payer)
		return err
	})

	return &PaymentResponse{
		Payment: *payment,
	}, nil
}

// Validate implements validation for ConfirmPaymentRequest
func (r *ConfirmPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// signalPaymentConfirmed tells the escrow deadline workflow to stand down
func (s *Service) signalPaymentConfirmed(ctx context.Context, workflowID, actor string) error {
	signal := workflow.ConfirmPaymentSignal{
		ConfirmedBy: actor,
	}

	if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.ConfirmPaymentSignalName, signal); err != nil {
		return fmt.Errorf("signal workflow %s: %w", workflowID, err)
	}
	return nil
}
