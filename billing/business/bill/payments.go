package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
)

func (b *business) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	dbPayment, err := b.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payment"}
	}
	return convertDBPaymentToModel(dbPayment), nil
}

func (b *business) ListPayments(ctx context.Context, user string, limit, offset int32) ([]model.Payment, error) {
	dbPayments, err := b.queries.ListPaymentsByUser(ctx, store.ListPaymentsByUserParams{
		Address: user,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list payments"}
	}

	payments := make([]model.Payment, len(dbPayments))
	for i, dbPayment := range dbPayments {
		payments[i] = *convertDBPaymentToModel(dbPayment)
	}
	return payments, nil
}

// EscrowBalance sums the user's open obligations: escrowed bill payments plus
// unclaimed contributions to still-active pools.
func (b *business) EscrowBalance(ctx context.Context, user, asset string) (int64, error) {
	payments, err := b.queries.SumEscrowedPaymentsByPayer(ctx, store.SumEscrowedPaymentsByPayerParams{
		Payer: user,
		Asset: asset,
	})
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to sum escrowed payments"}
	}

	contributions, err := b.queries.SumOpenContributionsByContributor(ctx, store.SumOpenContributionsByContributorParams{
		Contributor: user,
		Asset:       asset,
	})
	if err != nil {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to sum open contributions"}
	}

	return payments + contributions, nil
}
