package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// AdminHandler handles the city-analytics endpoints.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      City-wide waste statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        city  query  string  false  "City name, defaults to Bhopal"
// @Success      200  {object}  domain.CityStats
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	city := c.QueryParam("city")
	if city == "" {
		city = h.service.Cities()[0]
	}

	stats, err := h.service.CityStats(c.Request().Context(), city)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Cities handles GET /v1/admin/cities.
//
// @Summary      Cities available for analytics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /v1/admin/cities [get]
func (h *AdminHandler) Cities(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Cities())
}

// BinQR handles GET /v1/admin/bins/:id/qr.
//
// @Summary      QR payload for a bin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id        path   string  true   "Bin id"
// @Param        location  query  string  false  "Human-readable bin location"
// @Success      200  {object}  qrResponse
// @Router       /v1/admin/bins/{id}/qr [get]
func (h *AdminHandler) BinQR(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	binID := c.Param("id")
	return c.JSON(http.StatusOK, qrResponse{
		BinID: binID,
		Code:  h.service.BinCode(binID, c.QueryParam("location")),
	})
}
