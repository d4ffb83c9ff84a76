package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/core/services"
	"github.com/brewnotes/brewnotes_app/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepository = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSessionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSessionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// --- Test Suite ---
type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockSessionRepository
	service         portssvc.SessionSvcFacade
	ttl             time.Duration
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.ttl = time.Hour
	suite.service = services.NewSessionService(suite.mockSessionRepo, suite.ttl)
}

func TestSessionService(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (suite *SessionServiceTestSuite) TestEstablish_StoresHashNotToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	var saved domain.Session
	suite.mockSessionRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		saved = s
		return s.UserID == userID
	})).Return(nil).Once()

	token, err := suite.service.Establish(ctx, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.NotEqual(token, saved.TokenHash)
	suite.Equal(utils.HashSessionToken(token), saved.TokenHash)
	suite.WithinDuration(time.Now().Add(suite.ttl), saved.ExpiresAt, 5*time.Second)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestEstablish_UniqueTokens() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockSessionRepo.On("SaveSession", ctx, mock.AnythingOfType("domain.Session")).Return(nil).Twice()

	first, err := suite.service.Establish(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.service.Establish(ctx, userID)
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

func (suite *SessionServiceTestSuite) TestResolve_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	token := "some-raw-token"

	session := &domain.Session{
		TokenHash: utils.HashSessionToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	suite.mockSessionRepo.On("FindSessionByTokenHash", ctx, utils.HashSessionToken(token)).Return(session, nil).Once()

	resolved, err := suite.service.Resolve(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(userID, resolved)
}

func (suite *SessionServiceTestSuite) TestResolve_UnknownToken() {
	ctx := context.Background()

	suite.mockSessionRepo.On("FindSessionByTokenHash", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Once()

	resolved, err := suite.service.Resolve(ctx, "bogus-token")

	suite.Require().Error(err)
	suite.Empty(resolved)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestResolve_EmptyToken() {
	resolved, err := suite.service.Resolve(context.Background(), "")

	suite.Require().Error(err)
	suite.Empty(resolved)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "FindSessionByTokenHash", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestClear_Idempotent() {
	ctx := context.Background()
	token := "some-raw-token"

	suite.mockSessionRepo.On("DeleteSessionByTokenHash", ctx, utils.HashSessionToken(token)).Return(nil).Twice()

	suite.Require().NoError(suite.service.Clear(ctx, token))
	suite.Require().NoError(suite.service.Clear(ctx, token))
}

func (suite *SessionServiceTestSuite) TestClear_EmptyTokenIsNoop() {
	suite.Require().NoError(suite.service.Clear(context.Background(), ""))
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "DeleteSessionByTokenHash", mock.Anything, mock.Anything)
}
