package http_handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgeraldo/contact-book/internal/application/auth"
	"github.com/mgeraldo/contact-book/internal/infrastructure/memory"
	"github.com/mgeraldo/contact-book/internal/infrastructure/security"
	"github.com/mgeraldo/contact-book/internal/logger"
)

type stubSigner struct{}

func (stubSigner) SignAccessToken(userID string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("stub-token-%s", userID), nil
}

func (stubSigner) VerifyAccessToken(token string) (auth.TokenClaims, error) {
	return auth.TokenClaims{}, nil
}

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	svc := auth.NewService(
		memory.NewUserRepo(),
		security.NewBcryptHasher(4),
		stubSigner{},
		auth.Config{AccessTTL: 15 * time.Minute},
	)
	return NewAuthHandler(svc)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	t.Parallel()
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"ana@example.com"`)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	t.Parallel()
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, `{"email":"ana@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_field")
}

func TestAuthHandler_Login_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = postJSON(t, h.Login, `{"email":"ana@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "stub-token-")
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)

	rec = postJSON(t, h.Login, `{"email":"ana@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}
