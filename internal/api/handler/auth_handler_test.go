package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/session"
	"github.com/kachra-seth/engagement-system/pkg/logger"
)

// noopSessionRepo satisfies ports.SessionRepository without persistence.
type noopSessionRepo struct{}

func (noopSessionRepo) Save(context.Context, *domain.Session) error   { return nil }
func (noopSessionRepo) Load(context.Context) (*domain.Session, error) { return nil, nil }
func (noopSessionRepo) Clear(context.Context) error                   { return nil }

// stubAuthService returns canned results for Register and Login.
type stubAuthService struct {
	registerAccount *domain.Account
	registerErr     error
	loginToken      string
	loginSession    *domain.Session
	loginErr        error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string, _ domain.Role) (*domain.Account, error) {
	return s.registerAccount, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.Session, error) {
	return s.loginToken, s.loginSession, s.loginErr
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	logger.Init("error", false, nil)
	return session.NewStore(noopSessionRepo{}, logger.Get())
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestLoginOpensSessionAndReturnsDashboard(t *testing.T) {
	store := newTestStore(t)
	svc := &stubAuthService{
		loginToken: "tok-123",
		loginSession: &domain.Session{
			ID:           "u1",
			Name:         "Demo Citizen",
			Email:        "citizen@ks.com",
			Role:         domain.RoleCitizen,
			PointBalance: 120,
		},
	}
	h := NewAuthHandler(svc, store)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"citizen@ks.com","password":"123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Errorf("token = %q, want tok-123", resp.Token)
	}
	if resp.Dashboard != "citizen" {
		t.Errorf("dashboard = %q, want citizen", resp.Dashboard)
	}

	sess, ok := store.Current()
	if !ok {
		t.Fatal("session store empty after login")
	}
	if sess.ID != "u1" || sess.PointBalance != 120 {
		t.Errorf("stored session = %+v", sess)
	}
}

func TestLoginFailureIsGenericAndLeavesStoreEmpty(t *testing.T) {
	store := newTestStore(t)
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, store)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"citizen@ks.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Errorf("body = %s, want generic invalid credentials message", rec.Body.String())
	}
	if _, ok := store.Current(); ok {
		t.Error("session opened despite failed login")
	}
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newTestStore(t))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterConflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists}, newTestStore(t))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Dup","email":"dup@ks.com","password":"123","role":"citizen"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newTestStore(t))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"X","email":"x@ks.com","password":"123","role":"superuser"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	store.Login(context.Background(), domain.Session{ID: "u1", Role: domain.RoleCitizen})
	h := NewAuthHandler(&stubAuthService{}, store)

	e := newEcho()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := httptest.NewRecorder()
		if err := h.Logout(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Logout #%d: %v", i+1, err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("Logout #%d status = %d, want 204", i+1, rec.Code)
		}
	}
	if _, ok := store.Current(); ok {
		t.Error("session still present after logout")
	}
}

func TestMeWithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newTestStore(t))

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	if err := h.Me(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
