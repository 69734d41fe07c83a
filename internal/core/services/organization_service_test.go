package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
	"github.com/ZheltovAS/RR-test-task/internal/core/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockOrganizationRepository is a mock type for the OrganizationRepositoryFacade interface
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	args := m.Called(ctx, inn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, inn string, now time.Time) (*domain.Organization, error) {
	args := m.Called(ctx, tx, inn, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, organizationID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, organizationID, delta, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockBalanceLogRepository is a mock type for the BalanceLogRepositoryFacade interface
type MockBalanceLogRepository struct {
	mock.Mock
}

func (m *MockBalanceLogRepository) ListByOrganizationID(ctx context.Context, organizationID string, limit int, offset int) ([]domain.BalanceLog, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceLog), args.Error(1)
}

func (m *MockBalanceLogRepository) SaveBalanceLogInTx(ctx context.Context, tx pgx.Tx, log domain.BalanceLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

// --- Test Suite Setup ---

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockOrgRepo *MockOrganizationRepository
	mockLogRepo *MockBalanceLogRepository
	service     portssvc.OrganizationSvcFacade
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockLogRepo = new(MockBalanceLogRepository)
	suite.service = services.NewOrganizationService(suite.mockOrgRepo, suite.mockLogRepo)
}

// --- Test Cases ---

func (suite *OrganizationServiceTestSuite) TestGetBalanceByINN_Success() {
	ctx := context.Background()
	inn := "1234567890"
	expectedOrg := &domain.Organization{
		OrganizationID: uuid.NewString(),
		INN:            inn,
		Balance:        decimal.RequireFromString("145000.00"),
	}

	suite.mockOrgRepo.On("FindByINN", ctx, inn).Return(expectedOrg, nil).Once()

	org, err := suite.service.GetBalanceByINN(ctx, inn)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.Equal(expectedOrg, org)

	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestGetBalanceByINN_NotFound() {
	ctx := context.Background()
	inn := "0000000000"

	suite.mockOrgRepo.On("FindByINN", ctx, inn).Return(nil, apperrors.ErrNotFound).Once()

	org, err := suite.service.GetBalanceByINN(ctx, inn)

	suite.Require().Error(err)
	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestListBalanceLogs_Success() {
	ctx := context.Background()
	inn := "1234567890"
	orgID := uuid.NewString()
	org := &domain.Organization{
		OrganizationID: orgID,
		INN:            inn,
		Balance:        decimal.RequireFromString("300.00"),
	}
	paymentID := uuid.NewString()
	expectedLogs := []domain.BalanceLog{
		{
			BalanceLogID:   uuid.NewString(),
			OrganizationID: orgID,
			PaymentID:      &paymentID,
			Amount:         decimal.RequireFromString("200.00"),
			OldBalance:     decimal.RequireFromString("100.00"),
			NewBalance:     decimal.RequireFromString("300.00"),
			CreatedAt:      time.Now().UTC(),
		},
		{
			BalanceLogID:   uuid.NewString(),
			OrganizationID: orgID,
			Amount:         decimal.RequireFromString("100.00"),
			OldBalance:     decimal.Zero,
			NewBalance:     decimal.RequireFromString("100.00"),
			CreatedAt:      time.Now().UTC().Add(-time.Hour),
		},
	}

	suite.mockOrgRepo.On("FindByINN", ctx, inn).Return(org, nil).Once()
	suite.mockLogRepo.On("ListByOrganizationID", ctx, orgID, 20, 0).Return(expectedLogs, nil).Once()

	logs, err := suite.service.ListBalanceLogs(ctx, inn, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(expectedLogs, logs)

	suite.mockOrgRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestListBalanceLogs_UnknownINN() {
	ctx := context.Background()
	inn := "9999999999"

	suite.mockOrgRepo.On("FindByINN", ctx, inn).Return(nil, apperrors.ErrNotFound).Once()

	logs, err := suite.service.ListBalanceLogs(ctx, inn, 20, 0)

	suite.Require().Error(err)
	suite.Nil(logs)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockLogRepo.AssertNotCalled(suite.T(), "ListByOrganizationID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestListBalanceLogs_RepoError() {
	ctx := context.Background()
	inn := "1234567890"
	orgID := uuid.NewString()
	org := &domain.Organization{OrganizationID: orgID, INN: inn}

	expectedErr := assert.AnError

	suite.mockOrgRepo.On("FindByINN", ctx, inn).Return(org, nil).Once()
	suite.mockLogRepo.On("ListByOrganizationID", ctx, orgID, 10, 5).Return(nil, expectedErr).Once()

	logs, err := suite.service.ListBalanceLogs(ctx, inn, 10, 5)

	suite.Require().Error(err)
	suite.Nil(logs)
	suite.ErrorIs(err, expectedErr)

	suite.mockOrgRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
