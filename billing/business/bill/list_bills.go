package bill

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

func (b *business) ListBills(ctx context.Context, user string, asPayee bool, limit, offset int32) ([]*model.Bill, int64, error) {
	var (
		dbBills []store.Bill
		err     error
	)
	if asPayee {
		dbBills, err = b.queries.ListBillsByPayee(ctx, store.ListBillsByPayeeParams{
			Payee:  user,
			Limit:  limit,
			Offset: offset,
		})
	} else {
		dbBills, err = b.queries.ListBillsByPayer(ctx, store.ListBillsByPayerParams{
			Payer:  user,
			Limit:  limit,
			Offset: offset,
		})
	}
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	totalCount := int64(len(dbBills))
	if !asPayee {
		if count, err := b.queries.CountBillsByPayer(ctx, user); err == nil {
			totalCount = count
		}
	}

	bills := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		bills[i] = convertDBBillToModel(dbBill)
	}
	return bills, totalCount, nil
}

// ListDueBills returns active bills whose next payment is due at or before
// now. This is both the dashboard read and the sweep's work list.
func (b *business) ListDueBills(ctx context.Context, now time.Time, limit int32) ([]*model.Bill, error) {
	dbBills, err := b.queries.ListDueBills(ctx, store.ListDueBillsParams{
		NextPaymentAt: timestamptz(now),
		Limit:         limit,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list due bills"}
	}

	bills := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		bills[i] = convertDBBillToModel(dbBill)
	}
	return bills, nil
}
