package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/api/metrics"
	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// CitizenHandler handles the citizen dashboard endpoints.
type CitizenHandler struct {
	service ports.CitizenService
}

func NewCitizenHandler(service ports.CitizenService) *CitizenHandler {
	return &CitizenHandler{service: service}
}

// History handles GET /v1/citizen/history.
//
// @Summary      Disposal history
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.DisposalTransaction
// @Failure      401  {object}  map[string]string
// @Router       /v1/citizen/history [get]
func (h *CitizenHandler) History(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	history, err := h.service.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// SubmitWaste handles POST /v1/citizen/waste.
//
// @Summary      Submit a waste disposal
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitWasteRequest  true  "Disposal details"
// @Success      202   {object}  domain.DisposalTransaction
// @Failure      422   {object}  map[string]string
// @Router       /v1/citizen/waste [post]
func (h *CitizenHandler) SubmitWaste(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitWasteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tx, err := h.service.SubmitWaste(c.Request().Context(), userID, domain.WasteCategory(req.Category), req.WeightKg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, tx)
}

// Classify handles POST /v1/citizen/classify.
//
// @Summary      Classify a waste image
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      classifyRequest  true  "Image reference"
// @Success      200   {object}  domain.Classification
// @Router       /v1/citizen/classify [post]
func (h *CitizenHandler) Classify(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req classifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	result, err := h.service.Classify(c.Request().Context(), req.ImageRef)
	if err != nil {
		return err
	}
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, result)
}

// Scan handles POST /v1/citizen/scan.
//
// @Summary      Report a scanned bin
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scanRequest  true  "Decoded QR payload and observed fill level"
// @Success      200   {object}  scanResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/citizen/scan [post]
func (h *CitizenHandler) Scan(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.ScanBin(c.Request().Context(), ports.ScanInput{
		UserID:    userID,
		Code:      req.Code,
		FillLevel: req.FillLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBinCode):
			metrics.ScansTotal.WithLabelValues("invalid_code").Inc()
		case errors.Is(err, domain.ErrBinAlreadyScanned):
			metrics.ScansTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}
	metrics.ScansTotal.WithLabelValues("accepted").Inc()

	return c.JSON(http.StatusOK, scanResponse{
		BinID:         result.BinID,
		Location:      result.Location,
		PointsAwarded: result.PointsAwarded,
		NewBalance:    result.NewBalance,
	})
}

// Leaderboard handles GET /v1/citizen/leaderboard.
//
// @Summary      City leaderboard
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.LeaderboardEntry
// @Router       /v1/citizen/leaderboard [get]
func (h *CitizenHandler) Leaderboard(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	entries, err := h.service.Leaderboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Rewards handles GET /v1/citizen/rewards.
//
// @Summary      Reward catalog
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Reward
// @Router       /v1/citizen/rewards [get]
func (h *CitizenHandler) Rewards(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	catalog, err := h.service.Rewards(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog)
}

// Redeem handles POST /v1/citizen/rewards/:id/redeem.
//
// @Summary      Redeem a reward
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Reward id"
// @Success      200  {object}  redeemResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/citizen/rewards/{id}/redeem [post]
func (h *CitizenHandler) Redeem(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var rewardID int
	if err := echo.PathParamsBinder(c).Int("id", &rewardID).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reward id")
	}

	result, err := h.service.Redeem(c.Request().Context(), rewardID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownReward):
			metrics.RedemptionsTotal.WithLabelValues("unknown_reward").Inc()
		case errors.Is(err, domain.ErrInsufficientPoints):
			metrics.RedemptionsTotal.WithLabelValues("insufficient_points").Inc()
		}
		return err
	}
	metrics.RedemptionsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, redeemResponse{
		Reward:     result.Reward,
		NewBalance: result.NewBalance,
	})
}

// Schedule handles GET /v1/citizen/schedule.
//
// @Summary      Collection schedule
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Param        area  query  string  false  "Neighbourhood"
// @Success      200  {array}  domain.PickupSlot
// @Router       /v1/citizen/schedule [get]
func (h *CitizenHandler) Schedule(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	slots, err := h.service.Schedule(c.Request().Context(), c.QueryParam("area"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slots)
}

// Events handles GET /v1/citizen/events.
//
// @Summary      Community events
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CommunityEvent
// @Router       /v1/citizen/events [get]
func (h *CitizenHandler) Events(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	events, err := h.service.Events(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
