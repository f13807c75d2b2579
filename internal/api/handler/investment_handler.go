package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/api/metrics"
	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// InvestmentHandler handles HTTP requests for investment records.
type InvestmentHandler struct {
	service ports.InvestmentService
	views   ports.SummaryService
}

func NewInvestmentHandler(service ports.InvestmentService, views ports.SummaryService) *InvestmentHandler {
	return &InvestmentHandler{service: service, views: views}
}

// List handles GET /v1/investments.
//
// @Summary      List investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Only investments owned by this user"
// @Success      200      {array}   investmentResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /v1/investments [get]
func (h *InvestmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		invs []domain.Investment
		err  error
	)
	if userID := c.QueryParam("user_id"); userID != "" {
		invs, err = h.service.ListForUser(ctx, userID)
	} else {
		invs, err = h.service.List(ctx)
	}
	if err != nil {
		return err
	}

	views, err := h.views.Views(ctx, invs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponses(views))
}

// Mine handles GET /v1/me/investments.
//
// @Summary      List the caller's investments
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   investmentResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /v1/me/investments [get]
func (h *InvestmentHandler) Mine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	invs, err := h.service.ListForUser(ctx, userID)
	if err != nil {
		return err
	}

	views, err := h.views.Views(ctx, invs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponses(views))
}

// Create handles POST /v1/investments.
//
// @Summary      Create an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestmentRequest  true  "Investment details"
// @Success      201   {object}  mutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	inv, err := h.service.Create(ctx, toCreateInput(req))
	if err != nil {
		countMutation("create", err)
		return err
	}
	countMutation("create", nil)

	view, err := h.view(ctx, *inv)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, mutationResponse{
		Investment: toInvestmentResponse(view),
		Notice:     domain.Notice{Title: "Investment created", Message: "The investment was added"},
	})
}

// Update handles PATCH /v1/investments/:id.
//
// @Summary      Update an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Investment id"
// @Param        body  body      updateInvestmentRequest  true  "Fields to change"
// @Success      200   {object}  mutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/investments/{id} [patch]
func (h *InvestmentHandler) Update(c echo.Context) error {
	var req updateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	inv, err := h.service.Update(ctx, c.Param("id"), toPatch(req))
	if err != nil {
		countMutation("update", err)
		return err
	}
	countMutation("update", nil)

	view, err := h.view(ctx, *inv)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mutationResponse{
		Investment: toInvestmentResponse(view),
		Notice:     domain.Notice{Title: "Investment updated", Message: "The changes were saved"},
	})
}

// Delete handles DELETE /v1/investments/:id.
//
// @Summary      Delete an investment
// @Tags         investments
// @Security     BearerAuth
// @Param        id  path  string  true  "Investment id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err == nil && !removed {
		err = domain.ErrInvestmentNotFound
	}
	countMutation("delete", err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InvestmentHandler) view(ctx context.Context, inv domain.Investment) (ports.InvestmentView, error) {
	views, err := h.views.Views(ctx, []domain.Investment{inv})
	if err != nil {
		return ports.InvestmentView{}, err
	}
	return views[0], nil
}

func countMutation(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvestmentNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrInvalidInvestment):
		result = "invalid"
	default:
		result = "error"
	}
	metrics.InvestmentMutationsTotal.WithLabelValues(op, result).Inc()
}
