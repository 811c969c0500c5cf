package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quillpost-api/internal/auth"
	"quillpost-api/internal/jwt"
	"quillpost-api/internal/logger"
	"quillpost-api/internal/middleware"
	"quillpost-api/internal/models"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerErr error
	session     *auth.Session
	loginErr    error
	googleErr   error
	ttl         time.Duration

	lastClientIP string
	lastGoogle   auth.GoogleLoginInput
}

func (s *stubAuthService) Register(context.Context, string, string, string) error {
	return s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _, clientIP string) (*auth.Session, error) {
	s.lastClientIP = clientIP
	return s.session, s.loginErr
}

func (s *stubAuthService) GoogleLogin(_ context.Context, input auth.GoogleLoginInput) (*auth.Session, error) {
	s.lastGoogle = input
	return s.session, s.googleErr
}

func (s *stubAuthService) SessionTTL() time.Duration { return s.ttl }

func testSession() *auth.Session {
	return &auth.Session{
		Token: "signed.token.value",
		User: models.User{
			ID:    "u-1",
			Name:  "Ada",
			Email: "ada@example.com",
		},
	}
}

func newTestRouter(svc AuthService, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := logrus.New()
	base.SetOutput(io.Discard)

	h := NewHandler(svc, NewCookieConfig("access_token", "", production), logger.New(base))
	r := gin.New()
	RegisterPublicRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	return nil
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantCode   float64
		wantMsg    string
	}{
		{
			name:       "success",
			body:       RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"},
			wantStatus: http.StatusOK,
			wantCode:   float64(status.StatusSignupSuccess),
			wantMsg:    "Registration successful.",
		},
		{
			name:       "already registered",
			body:       RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"},
			err:        auth.ErrUserAlreadyRegistered,
			wantStatus: http.StatusConflict,
			wantCode:   float64(status.StatusEmailAlreadyExists),
			wantMsg:    "User already registered.",
		},
		{
			name:       "store failure forwards message",
			body:       RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"},
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   float64(status.StatusInternalServerError),
			wantMsg:    "connection refused",
		},
		{
			name:       "short password",
			body:       RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   float64(status.StatusValidationFailed),
		},
		{
			name:       "bad email",
			body:       RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "correct-horse"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   float64(status.StatusValidationFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubAuthService{registerErr: tt.err}, false)
			w := doJSON(r, http.MethodPost, "/api/v1/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["success"])
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, float64(tt.wantStatus), body["statusCode"])
			}
			assert.Nil(t, sessionCookie(w), "registration never issues a session")
		})
	}
}

func TestHandleLogin_SetsCookieAndHidesPassword(t *testing.T) {
	session := testSession()
	svc := &stubAuthService{session: session}
	r := newTestRouter(svc, false)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful.", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "u-1", user["_id"])
	assert.NotContains(t, user, "password")

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.token.value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.NotEmpty(t, svc.lastClientIP)
}

func TestHandleLogin_FailuresAreIndistinguishable(t *testing.T) {
	r := newTestRouter(&stubAuthService{loginErr: auth.ErrInvalidCredentials}, false)

	unknown := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	wrong := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ada@example.com", Password: "wrong-horse"})

	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, "Invalid login credentials.", decode(t, wrong)["message"])
	assert.Nil(t, sessionCookie(wrong))
}

func TestHandleLogin_TooManyAttempts(t *testing.T) {
	r := newTestRouter(&stubAuthService{loginErr: auth.ErrTooManyAttempts}, false)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, float64(status.StatusTooManyRequests), decode(t, w)["code"])
}

func TestCookiePolicy(t *testing.T) {
	tests := []struct {
		name         string
		production   bool
		wantSecure   bool
		wantSameSite http.SameSite
	}{
		{"development", false, false, http.SameSiteStrictMode},
		{"production", true, true, http.SameSiteNoneMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubAuthService{session: testSession(), ttl: time.Hour}, tt.production)

			login := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
			set := sessionCookie(login)
			require.NotNil(t, set)
			assert.Equal(t, tt.wantSecure, set.Secure)
			assert.Equal(t, tt.wantSameSite, set.SameSite)
			assert.Equal(t, 3600, set.MaxAge)

			logout := doJSON(r, http.MethodPost, "/api/v1/auth/logout", nil)
			cleared := sessionCookie(logout)
			require.NotNil(t, cleared)
			assert.Empty(t, cleared.Value)
			assert.Less(t, cleared.MaxAge, 0)
			assert.Equal(t, set.Secure, cleared.Secure)
			assert.Equal(t, set.SameSite, cleared.SameSite)
			assert.Equal(t, set.Path, cleared.Path)
			assert.True(t, cleared.HttpOnly)
		})
	}
}

func TestHandleLogin_NoTTLGivesSessionCookie(t *testing.T) {
	r := newTestRouter(&stubAuthService{session: testSession()}, false)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Zero(t, cookie.MaxAge)
}

func TestHandleGoogleLogin(t *testing.T) {
	svc := &stubAuthService{session: testSession()}
	r := newTestRouter(svc, false)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/google-login", GoogleLoginRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Avatar:  "https://lh3.example.com/a.png",
		IDToken: "id-token",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w))
	assert.Equal(t, "id-token", svc.lastGoogle.IDToken)
	assert.Equal(t, "https://lh3.example.com/a.png", svc.lastGoogle.Avatar)

	rejected := newTestRouter(&stubAuthService{googleErr: auth.ErrInvalidIdentity}, false)
	w = doJSON(rejected, http.MethodPost, "/api/v1/auth/google-login", GoogleLoginRequest{Name: "Ada", Email: "ada@example.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, float64(status.StatusInvalidIdentity), decode(t, w)["code"])
}

func TestHandleLogout_AlwaysSucceeds(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, false)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := doJSON(r, method, "/api/v1/auth/logout", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Logout successful.", body["message"])
	}
}

func TestHandleMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := jwt.NewJWTService("test-secret", "quillpost", 0)
	require.NoError(t, err)
	token, err := tokens.GenerateToken(&testSession().User)
	require.NoError(t, err)

	base := logrus.New()
	base.SetOutput(io.Discard)
	h := NewHandler(&stubAuthService{}, NewCookieConfig("access_token", "", false), logger.New(base))
	r := gin.New()
	group := r.Group("/api/v1/auth")
	group.Use(middleware.SessionAuth(tokens, "access_token"))
	RegisterProtectedRoutes(group, h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "u-1", user["_id"])
	assert.Equal(t, models.DefaultRole, user["role"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
