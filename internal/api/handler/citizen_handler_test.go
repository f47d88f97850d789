package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// stubCitizenService returns canned results per operation.
type stubCitizenService struct {
	scanResult   *ports.ScanResult
	scanErr      error
	redeemResult *ports.RedeemResult
	redeemErr    error
	redeemedID   int
}

func (s *stubCitizenService) History(context.Context, string) ([]domain.DisposalTransaction, error) {
	return []domain.DisposalTransaction{{ID: "t1"}}, nil
}

func (s *stubCitizenService) SubmitWaste(_ context.Context, _ string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error) {
	return &domain.DisposalTransaction{ID: "t2", Category: category, WeightKg: weightKg}, nil
}

func (s *stubCitizenService) Classify(context.Context, string) (*domain.Classification, error) {
	return &domain.Classification{Category: domain.CategoryPlastic, Confidence: 0.9, Points: 10}, nil
}

func (s *stubCitizenService) Leaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubCitizenService) Rewards(context.Context) ([]domain.Reward, error) {
	return nil, nil
}

func (s *stubCitizenService) Redeem(_ context.Context, rewardID int) (*ports.RedeemResult, error) {
	s.redeemedID = rewardID
	return s.redeemResult, s.redeemErr
}

func (s *stubCitizenService) ScanBin(context.Context, ports.ScanInput) (*ports.ScanResult, error) {
	return s.scanResult, s.scanErr
}

func (s *stubCitizenService) Schedule(context.Context, string) ([]domain.PickupSlot, error) {
	return nil, nil
}

func (s *stubCitizenService) Events(context.Context) ([]domain.CommunityEvent, error) {
	return nil, nil
}

// authedContext builds an echo.Context carrying the claims the Auth
// middleware would have injected.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string, role domain.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", string(role))
	return c
}

func TestScanReturnsOutcome(t *testing.T) {
	svc := &stubCitizenService{scanResult: &ports.ScanResult{
		BinID:         "B101",
		Location:      "MP Nagar",
		PointsAwarded: 20,
		NewBalance:    140,
	}}
	h := NewCitizenHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/scan",
		strings.NewReader(`{"code":"KS:BIN:B101:MP Nagar","fill_level":60}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Scan(authedContext(e, req, rec, "u1", domain.RoleCitizen)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp scanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.BinID != "B101" || resp.PointsAwarded != 20 || resp.NewBalance != 140 {
		t.Errorf("response = %+v", resp)
	}
}

func TestScanPropagatesDuplicateError(t *testing.T) {
	h := NewCitizenHandler(&stubCitizenService{scanErr: domain.ErrBinAlreadyScanned})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/scan",
		strings.NewReader(`{"code":"KS:BIN:B101","fill_level":60}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Scan(authedContext(e, req, rec, "u1", domain.RoleCitizen))
	if !errors.Is(err, domain.ErrBinAlreadyScanned) {
		t.Fatalf("err = %v, want ErrBinAlreadyScanned", err)
	}
}

func TestScanWithoutClaimsIsUnauthorized(t *testing.T) {
	h := NewCitizenHandler(&stubCitizenService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/scan",
		strings.NewReader(`{"code":"KS:BIN:B101","fill_level":60}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Scan(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 HTTPError", err)
	}
}

func TestRedeemBindsPathParam(t *testing.T) {
	svc := &stubCitizenService{redeemResult: &ports.RedeemResult{
		Reward:     domain.Reward{ID: 3, Title: "Metro Card"},
		NewBalance: 100,
	}}
	h := NewCitizenHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/rewards/3/redeem", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleCitizen)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Redeem(c); err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if svc.redeemedID != 3 {
		t.Errorf("redeemed id = %d, want 3", svc.redeemedID)
	}

	var resp redeemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.NewBalance != 100 || resp.Reward.ID != 3 {
		t.Errorf("response = %+v", resp)
	}
}

func TestSubmitWasteValidatesCategory(t *testing.T) {
	h := NewCitizenHandler(&stubCitizenService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/waste",
		strings.NewReader(`{"category":"uranium","weight_kg":2.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.SubmitWaste(authedContext(e, req, rec, "u1", domain.RoleCitizen))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("err = %v, want 422 HTTPError", err)
	}
}

func TestSubmitWasteAccepted(t *testing.T) {
	h := NewCitizenHandler(&stubCitizenService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/citizen/waste",
		strings.NewReader(`{"category":"plastic","weight_kg":2.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SubmitWaste(authedContext(e, req, rec, "u1", domain.RoleCitizen)); err != nil {
		t.Fatalf("SubmitWaste: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
}
