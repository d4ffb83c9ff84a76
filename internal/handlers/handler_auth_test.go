package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockUserSvc    *MockUserSvc
	mockSessionSvc *MockSessionSvc
	mockNoteSvc    *MockNoteSvc
	router         *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserSvc)
	suite.mockSessionSvc = new(MockSessionSvc)
	suite.mockNoteSvc = new(MockNoteSvc)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		User:        suite.mockUserSvc,
		Session:     suite.mockSessionSvc,
		Note:        suite.mockNoteSvc,
		GithubOAuth: new(MockGithubOAuthSvc),
		Coffee:      new(MockCoffeeSvc),
		Cafe:        new(MockCafeSvc),
	})
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestSignup_Success() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "brewer"}

	suite.mockUserSvc.On("SignupUser", mock.Anything, dto.SignupRequest{Username: "brewer", Password: "pw"}).
		Return(user, nil).Once()
	suite.mockSessionSvc.On("Establish", mock.Anything, userID).Return("raw-session-token", nil).Once()

	w := suite.postJSON("/signup", gin.H{"username": "brewer", "password": "pw"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.ID)
	suite.Equal("brewer", resp.Username)

	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.Equal(testCookieName, cookies[0].Name)
	suite.Equal("raw-session-token", cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
}

func (suite *AuthHandlerTestSuite) TestSignup_MissingFields() {
	w := suite.postJSON("/signup", gin.H{"username": "brewer"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.JSONEq(`{"error": "Username and password are required"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "SignupUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestSignup_DuplicateUsername() {
	suite.mockUserSvc.On("SignupUser", mock.Anything, mock.AnythingOfType("dto.SignupRequest")).
		Return(nil, apperrors.NewConflictError("Username already exists")).Once()

	w := suite.postJSON("/signup", gin.H{"username": "brewer", "password": "pw"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.JSONEq(`{"error": "Username already exists"}`, w.Body.String())
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "brewer"}

	suite.mockUserSvc.On("AuthenticateUser", mock.Anything, "brewer", "pw").Return(user, nil).Once()
	suite.mockSessionSvc.On("Establish", mock.Anything, userID).Return("raw-session-token", nil).Once()

	w := suite.postJSON("/login", gin.H{"username": "brewer", "password": "pw"})

	suite.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.Equal("raw-session-token", cookies[0].Value)
}

func (suite *AuthHandlerTestSuite) TestLogin_FailureIsUniform() {
	// The response for an unknown user and a wrong password must match
	// byte for byte so usernames cannot be probed.
	suite.mockUserSvc.On("AuthenticateUser", mock.Anything, "ghost", "pw").
		Return(nil, apperrors.NewUnauthorizedError("Invalid username or password")).Once()
	suite.mockUserSvc.On("AuthenticateUser", mock.Anything, "brewer", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("Invalid username or password")).Once()

	wUnknown := suite.postJSON("/login", gin.H{"username": "ghost", "password": "pw"})
	wWrongPass := suite.postJSON("/login", gin.H{"username": "brewer", "password": "wrong"})

	suite.Equal(http.StatusUnauthorized, wUnknown.Code)
	suite.Equal(http.StatusUnauthorized, wWrongPass.Code)
	suite.Equal(wUnknown.Body.String(), wWrongPass.Body.String())
	suite.JSONEq(`{"error": "Invalid username or password"}`, wUnknown.Body.String())
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingBodyIsUniform() {
	w := suite.postJSON("/login", gin.H{"username": "brewer"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error": "Invalid username or password"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogout_WithSession() {
	suite.mockSessionSvc.On("Clear", mock.Anything, "raw-session-token").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSessionSvc.AssertExpectations(suite.T())

	// Cookie is expired in the response
	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.Equal(testCookieName, cookies[0].Name)
	suite.Less(cookies[0].MaxAge, 0)
}

func (suite *AuthHandlerTestSuite) TestLogout_WithoutSessionStillSucceeds() {
	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSessionSvc.AssertNotCalled(suite.T(), "Clear", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestCheckSession_NoCookie() {
	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error": "Not logged in"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestCheckSession_ReturnsOwnNotesOnly() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "brewer"}
	notes := []domain.Note{
		{NoteID: uuid.NewString(), Rating: 4, UserID: userID, CoffeeID: uuid.NewString()},
	}

	suite.mockSessionSvc.On("Resolve", mock.Anything, "raw-session-token").Return(userID, nil).Once()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()
	suite.mockNoteSvc.On("ListNotesForUser", mock.Anything, userID).Return(notes, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.ID)
	suite.Require().Len(resp.Notes, 1)
	suite.Equal(userID, resp.Notes[0].UserID)
	suite.mockNoteSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestCheckSession_ExpiredSession() {
	suite.mockSessionSvc.On("Resolve", mock.Anything, "stale-token").
		Return("", apperrors.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale-token"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.True(strings.Contains(w.Body.String(), "Not logged in"))
}

func (suite *AuthHandlerTestSuite) TestHealthEndpointIsPublic() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}
