package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	"github.com/ZheltovAS/RR-test-task/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PgxPaymentRepository struct {
	BaseRepository
	organizationRepo portsrepo.OrganizationRepositoryFacade
	balanceLogRepo   portsrepo.BalanceLogRepositoryFacade
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool, organizationRepo portsrepo.OrganizationRepositoryFacade, balanceLogRepo portsrepo.BalanceLogRepositoryFacade) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		organizationRepo: organizationRepo,
		balanceLogRepo:   balanceLogRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// ExistsByOperationID reports whether a payment with the given operation id
// has already been recorded.
func (r *PgxPaymentRepository) ExistsByOperationID(ctx context.Context, operationID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE operation_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, operationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment existence for operation %s: %w", operationID, err)
	}
	return exists, nil
}

// SavePayment records a payment and credits the payer organization within a
// single DB transaction: organization upsert + row lock, payment insert,
// atomic balance increment, audit log append. Either all of it commits or
// none of it does.
//
// A unique violation on operation_id is reported as apperrors.ErrDuplicate:
// a concurrent delivery won the race and its credit is the one that counts.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.BalanceLog, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	now := payment.CreatedAt

	// 1. Upsert and lock the payer organization; the locked row carries the
	// balance before this credit.
	org, err := r.organizationRepo.GetOrCreateForUpdate(ctx, tx, payment.PayerINN, now)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get or create organization for payment "+payment.PaymentID, err)
	}
	oldBalance := org.Balance

	// 2. Insert the payment row. The UNIQUE constraint on operation_id is the
	// authoritative dedup guard; the service pre-check is only a fast path.
	modelPayment := mapping.ToModelPayment(payment)
	paymentQuery := `
		INSERT INTO payments (payment_id, operation_id, amount, payer_inn, document_number, document_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, paymentQuery,
		modelPayment.PaymentID,
		modelPayment.OperationID,
		modelPayment.Amount,
		modelPayment.PayerINN,
		modelPayment.DocumentNumber,
		modelPayment.DocumentDate,
		modelPayment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: payment with operation id %s already exists", apperrors.ErrDuplicate, payment.OperationID)
		}
		return nil, apperrors.NewAppError(500, "failed to insert payment "+payment.PaymentID, err)
	}

	// 3. Atomic increment of the organization's balance.
	newBalance, err := r.organizationRepo.IncrementBalanceInTx(ctx, tx, org.OrganizationID, payment.Amount, now)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update organization balance for payment "+payment.PaymentID, err)
	}

	// 4. Append the audit entry.
	balanceLog := domain.BalanceLog{
		BalanceLogID:   uuid.NewString(),
		OrganizationID: org.OrganizationID,
		PaymentID:      &payment.PaymentID,
		Amount:         payment.Amount,
		OldBalance:     oldBalance,
		NewBalance:     newBalance,
		CreatedAt:      now,
	}
	if err := r.balanceLogRepo.SaveBalanceLogInTx(ctx, tx, balanceLog); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert balance log for payment "+payment.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &balanceLog, nil
}
