package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	"github.com/ZheltovAS/RR-test-task/internal/models"
	"github.com/ZheltovAS/RR-test-task/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxOrganizationRepository struct {
	pool *pgxpool.Pool
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{pool: pool}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepositoryFacade
var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// FindByINN retrieves an organization by its tax identifier.
func (r *PgxOrganizationRepository) FindByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, inn, balance, created_at, updated_at
		FROM organizations
		WHERE inn = $1;
	`
	var modelOrg models.Organization
	err := r.pool.QueryRow(ctx, query, inn).Scan(
		&modelOrg.OrganizationID,
		&modelOrg.INN,
		&modelOrg.Balance,
		&modelOrg.CreatedAt,
		&modelOrg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("organization with INN " + inn + " not found")
		}
		return nil, fmt.Errorf("failed to find organization by INN %s: %w", inn, err)
	}

	domainOrg := mapping.ToDomainOrganization(modelOrg)
	return &domainOrg, nil
}

// GetOrCreateForUpdate upserts the organization for the given INN and locks
// the row for the duration of the transaction. A fresh organization starts
// with a zero balance. Must be called within a transaction.
func (r *PgxOrganizationRepository) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, inn string, now time.Time) (*domain.Organization, error) {
	// ON CONFLICT DO NOTHING keeps the insert race-free; the locked SELECT
	// below is the authoritative read either way.
	modelOrg := mapping.ToModelOrganization(domain.Organization{
		OrganizationID: uuid.NewString(),
		INN:            inn,
		Balance:        decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	insertQuery := `
		INSERT INTO organizations (organization_id, inn, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (inn) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insertQuery,
		modelOrg.OrganizationID,
		modelOrg.INN,
		modelOrg.Balance,
		modelOrg.CreatedAt,
		modelOrg.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert organization for INN %s: %w", inn, err)
	}

	selectQuery := `
		SELECT organization_id, inn, balance, created_at, updated_at
		FROM organizations
		WHERE inn = $1
		FOR UPDATE;
	`
	modelOrg = models.Organization{}
	err := tx.QueryRow(ctx, selectQuery, inn).Scan(
		&modelOrg.OrganizationID,
		&modelOrg.INN,
		&modelOrg.Balance,
		&modelOrg.CreatedAt,
		&modelOrg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lock organization for INN %s: %w", inn, err)
	}

	domainOrg := mapping.ToDomainOrganization(modelOrg)
	return &domainOrg, nil
}

// IncrementBalanceInTx atomically adds delta to the organization's balance
// within the transaction. The update is expressed relative to the committed
// value, never as a blind overwrite of a balance read earlier.
func (r *PgxOrganizationRepository) IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, organizationID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE organizations
		SET balance = balance + $2, updated_at = $3
		WHERE organization_id = $1
		RETURNING balance;
	`
	var newBalance decimal.Decimal
	err := tx.QueryRow(ctx, query, organizationID, delta, now).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The row is locked by this transaction, so this indicates deletion
			// from outside between lock and update.
			return decimal.Zero, fmt.Errorf("%w: organization %s not found during balance update", apperrors.ErrNotFound, organizationID)
		}
		return decimal.Zero, fmt.Errorf("failed to update balance for organization %s: %w", organizationID, err)
	}
	return newBalance, nil
}
