package workflow

const (
	// Signal names
	ConfirmPaymentSignalName = "confirm-payment"
	BillStatusSignalName     = "bill-status"
)

// ConfirmPaymentSignal tells the escrow deadline workflow that the payee
// confirmed receipt, so no refund is needed.
type ConfirmPaymentSignal struct {
	ConfirmedBy string `json:"confirmed_by"`
}

// BillStatusSignal propagates a bill status change into the schedule
// workflow. Pausing suspends future payments; cancelling ends the schedule.
type BillStatusSignal struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changed_by"`
}
