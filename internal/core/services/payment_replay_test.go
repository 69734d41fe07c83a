package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/ZheltovAS/RR-test-task/internal/core/services"
	"github.com/ZheltovAS/RR-test-task/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAppendFailed = errors.New("insert balance log: connection reset")

// fakeLedgerRepo is an in-memory stand-in for the payment repository. It
// mimics the transactional credit: one payment per operation id, balance
// incremented from its committed value, one audit entry per credit, and
// nothing recorded at all when the audit append fails. The mutex gives it
// the same all-or-nothing visibility a committed transaction has.
type fakeLedgerRepo struct {
	mu         sync.Mutex
	payments   map[uuid.UUID]domain.Payment
	balances   map[string]decimal.Decimal
	logs       map[string][]domain.BalanceLog
	failAppend bool
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		payments: make(map[uuid.UUID]domain.Payment),
		balances: make(map[string]decimal.Decimal),
		logs:     make(map[string][]domain.BalanceLog),
	}
}

func (f *fakeLedgerRepo) setFailAppend(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAppend = fail
}

func (f *fakeLedgerRepo) ExistsByOperationID(_ context.Context, operationID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.payments[operationID]
	return ok, nil
}

func (f *fakeLedgerRepo) SavePayment(_ context.Context, payment domain.Payment) (*domain.BalanceLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The audit append is the last write before commit; when it fails the
	// whole credit rolls back and nothing becomes observable.
	if f.failAppend {
		return nil, errAppendFailed
	}

	f.payments[payment.OperationID] = payment

	oldBalance := f.balances[payment.PayerINN]
	newBalance := oldBalance.Add(payment.Amount)
	f.balances[payment.PayerINN] = newBalance

	log := domain.BalanceLog{
		BalanceLogID:   uuid.NewString(),
		OrganizationID: payment.PayerINN,
		PaymentID:      &payment.PaymentID,
		Amount:         payment.Amount,
		OldBalance:     oldBalance,
		NewBalance:     newBalance,
		CreatedAt:      payment.CreatedAt,
	}
	f.logs[payment.PayerINN] = append(f.logs[payment.PayerINN], log)
	return &log, nil
}

func (f *fakeLedgerRepo) snapshot(inn string) (decimal.Decimal, []domain.BalanceLog, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	logs := make([]domain.BalanceLog, len(f.logs[inn]))
	copy(logs, f.logs[inn])
	return f.balances[inn], logs, len(f.payments)
}

// assertChained checks every audit entry is internally additive and chains
// to its predecessor, starting from a zero balance.
func assertChained(t *testing.T, logChain []domain.BalanceLog) {
	t.Helper()
	require.NotEmpty(t, logChain)
	assert.True(t, logChain[0].OldBalance.IsZero())
	for i, l := range logChain {
		assert.True(t, l.NewBalance.Equal(l.OldBalance.Add(l.Amount)),
			"entry %d: new balance must equal old balance plus amount", i)
		if i > 0 {
			assert.True(t, l.OldBalance.Equal(logChain[i-1].NewBalance),
				"entry %d: old balance must equal previous entry's new balance", i)
		}
	}
}

// TestBalanceLogChainReplay feeds a sequence of notifications through the
// service, with every delivery repeated, and checks the books afterwards:
// one recorded payment and one audit entry per operation id, a fully
// chained audit trail, and the final balance equal to the sum of the
// distinct amounts.
func TestBalanceLogChainReplay(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := services.NewPaymentService(repo)
	ctx := context.Background()

	const inn = "1234567890"
	amounts := []string{"100.00", "250.50", "-30.25", "0.00", "0.01", "9999.99"}

	expectedTotal := decimal.Zero
	for i, a := range amounts {
		req := dto.BankWebhookRequest{
			OperationID:    uuid.New(),
			Amount:         decimal.RequireFromString(a),
			PayerINN:       inn,
			DocumentNumber: fmt.Sprintf("DOC-%03d", i),
			DocumentDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
		expectedTotal = expectedTotal.Add(req.Amount)

		outcome, err := svc.ProcessWebhook(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCreated, outcome)

		// Re-deliver the same notification twice more.
		for range 2 {
			outcome, err := svc.ProcessWebhook(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeDuplicate, outcome)
		}
	}

	balance, logChain, paymentCount := repo.snapshot(inn)

	// One payment and one audit entry per distinct operation id.
	assert.Equal(t, len(amounts), paymentCount)
	require.Len(t, logChain, len(amounts))
	assertChained(t, logChain)

	// The running balance is exactly the sum of the distinct amounts,
	// regardless of how many times each notification was delivered.
	assert.True(t, expectedTotal.Equal(balance))
	assert.True(t, expectedTotal.Equal(logChain[len(logChain)-1].NewBalance))
}

// TestConcurrentPaymentsCreditExactly fires K payments with distinct
// operation ids at the same organization from K goroutines and checks that
// the final balance is exactly K times the amount, with K chained audit
// entries and no lost update.
func TestConcurrentPaymentsCreditExactly(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := services.NewPaymentService(repo)
	ctx := context.Background()

	const inn = "7707083893"
	const workers = 25
	amount := decimal.RequireFromString("10.00")

	outcomes := make([]domain.ProcessOutcome, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := dto.BankWebhookRequest{
				OperationID:    uuid.New(),
				Amount:         amount,
				PayerINN:       inn,
				DocumentNumber: fmt.Sprintf("DOC-%03d", i),
				DocumentDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			}
			outcomes[i], errs[i] = svc.ProcessWebhook(ctx, req)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, domain.OutcomeCreated, outcomes[i])
	}

	balance, logChain, paymentCount := repo.snapshot(inn)

	assert.Equal(t, workers, paymentCount)
	require.Len(t, logChain, workers)
	assertChained(t, logChain)

	expectedTotal := amount.Mul(decimal.NewFromInt(workers))
	assert.True(t, expectedTotal.Equal(balance),
		"expected %s, got %s", expectedTotal, balance)
}

// TestFailedCreditLeavesNothingBehind forces the audit-log append to fail
// and checks that the failed delivery commits neither the payment row nor
// any balance change, and that a later retry of the same notification
// lands as a fresh credit.
func TestFailedCreditLeavesNothingBehind(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.setFailAppend(true)
	svc := services.NewPaymentService(repo)
	ctx := context.Background()

	const inn = "1234567890"
	req := dto.BankWebhookRequest{
		OperationID:    uuid.New(),
		Amount:         decimal.RequireFromString("100.00"),
		PayerINN:       inn,
		DocumentNumber: "PAY-328",
		DocumentDate:   time.Date(2024, 4, 27, 21, 0, 0, 0, time.UTC),
	}

	outcome, err := svc.ProcessWebhook(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, errAppendFailed)
	assert.Empty(t, outcome)

	// Nothing committed: the operation id is still unknown, the balance is
	// untouched and the audit trail is empty.
	exists, err := repo.ExistsByOperationID(ctx, req.OperationID)
	require.NoError(t, err)
	assert.False(t, exists)

	balance, logChain, paymentCount := repo.snapshot(inn)
	assert.True(t, balance.IsZero())
	assert.Empty(t, logChain)
	assert.Zero(t, paymentCount)

	// The bank retries the same notification and the credit lands cleanly,
	// not as a duplicate.
	repo.setFailAppend(false)
	outcome, err = svc.ProcessWebhook(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, outcome)

	balance, logChain, paymentCount = repo.snapshot(inn)
	assert.True(t, req.Amount.Equal(balance))
	assert.Len(t, logChain, 1)
	assert.Equal(t, 1, paymentCount)
}
