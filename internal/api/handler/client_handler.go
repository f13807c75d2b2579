package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/core/ports"
)

// ClientHandler serves the administrator's client directory.
type ClientHandler struct {
	clients   ports.ClientDirectory
	summaries ports.SummaryService
}

func NewClientHandler(clients ports.ClientDirectory, summaries ports.SummaryService) *ClientHandler {
	return &ClientHandler{clients: clients, summaries: summaries}
}

// List handles GET /v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(clients))
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Client detail with investments
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.clients.FindUser(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	summary, err := h.summaries.ClientSummary(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clientDetailResponse{
		Client:  toUserResponse(*user),
		Summary: toClientSummaryResponse(summary),
	})
}
