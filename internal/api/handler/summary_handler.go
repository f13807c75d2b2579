package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/core/ports"
)

// SummaryHandler serves the dashboard figures.
type SummaryHandler struct {
	service ports.SummaryService
}

func NewSummaryHandler(service ports.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Admin handles GET /v1/summary.
//
// @Summary      Administrator dashboard
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminSummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /v1/summary [get]
func (h *SummaryHandler) Admin(c echo.Context) error {
	summary, err := h.service.AdminSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminSummaryResponse(summary))
}

// Mine handles GET /v1/me/summary.
//
// @Summary      Client dashboard
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientSummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /v1/me/summary [get]
func (h *SummaryHandler) Mine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.service.ClientSummary(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientSummaryResponse(summary))
}
