package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/mocks"
	"github.com/taskboard-io/taskboard/internal/service"
)

func loginRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newLoginHandler(verifierOK bool) (*AuthHandler, *mocks.MockUserStore) {
	users := mocks.NewMockUserStore()
	users.MustAdd(&domain.User{Email: "jane@example.com", HashedPassword: "stored-hash"})
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: verifierOK}
	userService := service.NewUserService(users, mocks.NewMockTaskStore(), verifier, nil)
	handler := NewAuthHandler(
		userService,
		&mocks.MockJWTService{Token: "test-token"},
		verifier,
	)
	return handler, users
}

func TestLoginReturnsBareToken(t *testing.T) {
	handler, _ := newLoginHandler(true)

	rr := httptest.NewRecorder()
	handler.Login(rr, loginRequest(t, LoginRequest{Username: "jane@example.com", Password: "secret123"}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-token", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestLoginUnknownUser(t *testing.T) {
	handler, _ := newLoginHandler(true)

	rr := httptest.NewRecorder()
	handler.Login(rr, loginRequest(t, LoginRequest{Username: "ghost@example.com", Password: "secret123"}))

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	handler, _ := newLoginHandler(false)

	rr := httptest.NewRecorder()
	handler.Login(rr, loginRequest(t, LoginRequest{Username: "jane@example.com", Password: "wrong"}))

	// Same response as an unknown account so callers cannot probe for emails
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLoginBadPayload(t *testing.T) {
	handler, _ := newLoginHandler(true)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.Login(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	handler.Login(rr, loginRequest(t, LoginRequest{Username: "not-an-email", Password: "secret123"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	handler.Login(rr, loginRequest(t, LoginRequest{Username: "jane@example.com"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
