package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type UpdateBillStatusRequest struct {
	Actor string `header:"X-Wallet-Address" json:"-" validate:"required"`

	Status string `json:"status" validate:"required,oneof=active paused cancelled"`
}

//encore:api public path=/v1/bills/:id/status method=PUT
func (s *Service) UpdateBillStatus(ctx context.Context, id int64, req *UpdateBillStatusRequest) (*BillResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	err := s.bills.UpdateBillStatus(ctx, id, req.Actor, model.BillStatus(req.Status))
	if err != nil {
		rlog.Error("failed to update bill status", "error", err, "id", id, "status", req.Status)
		return nil, err
	}

	bill, err := s.bills.GetBill(ctx, id)
	if err != nil {
		rlog.Error("failed to get updated bill", "error", err, "id", id)
		return nil, err
	}

	// Propagate the status change into the schedule workflow off the request path
	if bill.WorkflowID != nil {
		workflowID := *bill.WorkflowID
		status := req.Status
		actor := req.Actor
		runAsync("signal-bill-status", func(ctx context.Context) error {
			return s.signalBillStatus(ctx, workflowID, status, actor)
		})
	}

	return &BillResponse{
		Bill: *bill,
	}, nil
}

// Validate implements validation for UpdateBillStatusRequest
func (r *UpdateBillStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// signalBillStatus signals the bill schedule workflow about a status change
func (s *Service) signalBillStatus(ctx context.Context, workflowID, status, actor string) error {
	signal := workflow.BillStatusSignal{
		Status:    status,
		ChangedBy: actor,
	}

	if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.BillStatusSignalName, signal); err != nil {
		return fmt.Errorf("signal workflow %s: %w", workflowID, err)
	}
	return nil
}
