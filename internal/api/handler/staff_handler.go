package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// ReportSink accepts fill-level reports for asynchronous application.
// Implemented by the queue dispatcher.
type ReportSink interface {
	Enqueue(report domain.BinReport)
}

// StaffHandler handles the collection staff endpoints.
type StaffHandler struct {
	fleet   ports.FleetService
	reports ReportSink
}

func NewStaffHandler(fleet ports.FleetService, reports ReportSink) *StaffHandler {
	return &StaffHandler{fleet: fleet, reports: reports}
}

// Route handles GET /v1/staff/route.
//
// @Summary      Today's collection route
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RouteStop
// @Router       /v1/staff/route [get]
func (h *StaffHandler) Route(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.fleet.Route())
}

// ToggleStop handles POST /v1/staff/route/:id/toggle.
//
// @Summary      Toggle a route stop's completion flag
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Stop id"
// @Success      200  {object}  domain.RouteStop
// @Failure      404  {object}  map[string]string
// @Router       /v1/staff/route/{id}/toggle [post]
func (h *StaffHandler) ToggleStop(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	stop, err := h.fleet.ToggleStop(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stop)
}

// Bins handles GET /v1/staff/bins.
//
// @Summary      Bin map
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Bin
// @Router       /v1/staff/bins [get]
func (h *StaffHandler) Bins(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.fleet.Bins())
}

// ReportBin handles POST /v1/staff/bins/:id/report.
//
// @Summary      Report an observed bin fill level
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string            true  "Bin id"
// @Param        body  body  binReportRequest  true  "Observed fill level"
// @Success      202   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/staff/bins/{id}/report [post]
func (h *StaffHandler) ReportBin(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req binReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.reports.Enqueue(domain.BinReport{
		BinID:      c.Param("id"),
		FillLevel:  req.FillLevel,
		ReportedBy: userID,
		Source:     "staff_app",
	})

	return c.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
}

// Vehicle handles GET /v1/staff/vehicle.
//
// @Summary      Current vehicle position
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Coordinates
// @Router       /v1/staff/vehicle [get]
func (h *StaffHandler) Vehicle(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.fleet.Vehicle())
}

// Stats handles GET /v1/staff/stats.
//
// @Summary      Today's collection stats
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.FleetStats
// @Router       /v1/staff/stats [get]
func (h *StaffHandler) Stats(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.fleet.Stats())
}
