package handlers_test

import (
	"context"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/handlers"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

const testCookieName = "session_id"

// newTestRouter wires the full route table against mock services so the
// middleware chain (including the session gate) runs exactly as in production.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:              "8080",
		SessionCookieName: testCookieName,
		SessionTTL:        time.Hour,
		FrontendBaseURL:   "http://localhost:3000",
		LoginRateLimit:    "1000-S",
	}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

// --- Mock UserSvc ---
type MockUserSvc struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserSvc)(nil)

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) SignupUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) GetOrCreateOAuthUser(ctx context.Context, login string, email string) (*domain.User, error) {
	args := m.Called(ctx, login, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) LinkGithubAccount(ctx context.Context, userID string, githubID string, avatarURL *string) (*domain.User, error) {
	args := m.Called(ctx, userID, githubID, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock SessionSvc ---
type MockSessionSvc struct {
	mock.Mock
}

var _ portssvc.SessionSvcFacade = (*MockSessionSvc)(nil)

func (m *MockSessionSvc) Establish(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionSvc) Resolve(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionSvc) Clear(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Mock GithubOAuthSvc ---
type MockGithubOAuthSvc struct {
	mock.Mock
}

var _ portssvc.GithubOAuthSvcFacade = (*MockGithubOAuthSvc)(nil)

func (m *MockGithubOAuthSvc) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGithubOAuthSvc) GetGithubLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGithubOAuthSvc) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGithubOAuthSvc) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GithubUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GithubUserInfo), args.Error(1)
}

func (m *MockGithubOAuthSvc) GetVerifiedEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// --- Mock NoteSvc ---
type MockNoteSvc struct {
	mock.Mock
}

var _ portssvc.NoteSvcFacade = (*MockNoteSvc)(nil)

func (m *MockNoteSvc) ListNotesForUser(ctx context.Context, userID string) ([]domain.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteSvc) CreateNote(ctx context.Context, userID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteSvc) GetNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteSvc) UpdateNote(ctx context.Context, userID string, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	args := m.Called(ctx, userID, noteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteSvc) DeleteNote(ctx context.Context, userID string, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

// --- Mock CoffeeSvc ---
type MockCoffeeSvc struct {
	mock.Mock
}

var _ portssvc.CoffeeSvcFacade = (*MockCoffeeSvc)(nil)

func (m *MockCoffeeSvc) ListCoffees(ctx context.Context) ([]domain.Coffee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coffee), args.Error(1)
}

func (m *MockCoffeeSvc) CreateCoffee(ctx context.Context, req dto.CreateCoffeeRequest) (*domain.Coffee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coffee), args.Error(1)
}

func (m *MockCoffeeSvc) GetCoffeeByID(ctx context.Context, coffeeID string) (*domain.Coffee, error) {
	args := m.Called(ctx, coffeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coffee), args.Error(1)
}

func (m *MockCoffeeSvc) UpdateCoffee(ctx context.Context, coffeeID string, req dto.UpdateCoffeeRequest) (*domain.Coffee, error) {
	args := m.Called(ctx, coffeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coffee), args.Error(1)
}

func (m *MockCoffeeSvc) DeleteCoffee(ctx context.Context, coffeeID string) error {
	args := m.Called(ctx, coffeeID)
	return args.Error(0)
}

// --- Mock CafeSvc ---
type MockCafeSvc struct {
	mock.Mock
}

var _ portssvc.CafeSvcFacade = (*MockCafeSvc)(nil)

func (m *MockCafeSvc) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cafe), args.Error(1)
}

func (m *MockCafeSvc) CreateCafe(ctx context.Context, req dto.CreateCafeRequest) (*domain.Cafe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cafe), args.Error(1)
}

func (m *MockCafeSvc) GetCafeByID(ctx context.Context, cafeID string) (*domain.Cafe, error) {
	args := m.Called(ctx, cafeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cafe), args.Error(1)
}

func (m *MockCafeSvc) UpdateCafe(ctx context.Context, cafeID string, req dto.UpdateCafeRequest) (*domain.Cafe, error) {
	args := m.Called(ctx, cafeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cafe), args.Error(1)
}

func (m *MockCafeSvc) DeleteCafe(ctx context.Context, cafeID string) error {
	args := m.Called(ctx, cafeID)
	return args.Error(0)
}
