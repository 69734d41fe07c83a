package pgsql

import (
	"context"
	"fmt"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	"github.com/ZheltovAS/RR-test-task/internal/models"
	"github.com/ZheltovAS/RR-test-task/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceLogRepository struct {
	pool *pgxpool.Pool
}

// newPgxBalanceLogRepository creates a new repository for balance audit entries.
func newPgxBalanceLogRepository(pool *pgxpool.Pool) portsrepo.BalanceLogRepositoryFacade {
	return &PgxBalanceLogRepository{pool: pool}
}

// Ensure PgxBalanceLogRepository implements portsrepo.BalanceLogRepositoryFacade
var _ portsrepo.BalanceLogRepositoryFacade = (*PgxBalanceLogRepository)(nil)

// SaveBalanceLogInTx appends an audit entry within the given transaction.
// Entries are append-only; there is no update or delete counterpart.
func (r *PgxBalanceLogRepository) SaveBalanceLogInTx(ctx context.Context, tx pgx.Tx, log domain.BalanceLog) error {
	modelLog := mapping.ToModelBalanceLog(log)

	query := `
		INSERT INTO balance_logs (balance_log_id, organization_id, payment_id, amount, old_balance, new_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		modelLog.BalanceLogID,
		modelLog.OrganizationID,
		modelLog.PaymentID,
		modelLog.Amount,
		modelLog.OldBalance,
		modelLog.NewBalance,
		modelLog.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert balance log %s: %w", modelLog.BalanceLogID, err)
	}
	return nil
}

// ListByOrganizationID retrieves a newest-first page of audit entries for an organization.
func (r *PgxBalanceLogRepository) ListByOrganizationID(ctx context.Context, organizationID string, limit int, offset int) ([]domain.BalanceLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT balance_log_id, organization_id, payment_id, amount, old_balance, new_balance, created_at
		FROM balance_logs
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance logs for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	logs := []models.BalanceLog{}
	for rows.Next() {
		var l models.BalanceLog
		err := rows.Scan(
			&l.BalanceLogID,
			&l.OrganizationID,
			&l.PaymentID,
			&l.Amount,
			&l.OldBalance,
			&l.NewBalance,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance log row for organization %s: %w", organizationID, err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance log rows for organization %s: %w", organizationID, err)
	}

	return mapping.ToDomainBalanceLogSlice(logs), nil
}
