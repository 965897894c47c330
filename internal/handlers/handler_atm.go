package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/dto"
	"github.com/SscSPs/atm_simulator/internal/middleware"
	"github.com/SscSPs/atm_simulator/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// atmHandler handles HTTP requests for the ATM operations.
type atmHandler struct {
	atm      portssvc.ATMSvcFacade
	currency domain.Currency
}

// newATMHandler creates a new atmHandler.
func newATMHandler(atm portssvc.ATMSvcFacade, currency domain.Currency) *atmHandler {
	return &atmHandler{
		atm:      atm,
		currency: currency,
	}
}

// registerATMRoutes registers routes related to the ATM.
func registerATMRoutes(rg *gin.RouterGroup, atm portssvc.ATMSvcFacade, currency domain.Currency) {
	h := newATMHandler(atm, currency)

	routes := rg.Group("/atm")
	{
		routes.GET("/balance", h.checkBalance)
		routes.POST("/deposit", h.deposit)
		routes.POST("/withdraw", h.withdraw)
	}
}

// checkBalance godoc
// @Summary Check balance
// @Description Reports the current balance of the account
// @Tags atm
// @Produce  json
// @Success 200 {object} dto.OperationResponse
// @Router /atm/balance [get]
func (h *atmHandler) checkBalance(c *gin.Context) {
	n := h.atm.CheckBalance(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToOperationResponse(n, h.currency))
}

// deposit godoc
// @Summary Deposit money
// @Description Adds a positive amount with at most two decimal places, up to 1000000000000.00, to the balance
// @Tags atm
// @Accept  json
// @Produce  json
// @Param   request body dto.AmountRequest true "Amount to deposit"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} dto.ErrorResponse "Amount is not a plain decimal number"
// @Failure 422 {object} dto.OperationResponse "Amount is not positive, above the maximum or has sub-cent digits"
// @Failure 500 {object} dto.ErrorResponse
// @Router /atm/deposit [post]
func (h *atmHandler) deposit(c *gin.Context) {
	amount, ok := h.bindAmount(c)
	if !ok {
		return
	}
	n, err := h.atm.Deposit(c.Request.Context(), amount)
	h.respond(c, n, err)
}

// withdraw godoc
// @Summary Withdraw money
// @Description Removes an amount from the balance if funds are sufficient
// @Tags atm
// @Accept  json
// @Produce  json
// @Param   request body dto.AmountRequest true "Amount to withdraw"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} dto.ErrorResponse "Amount is not a plain decimal number"
// @Failure 409 {object} dto.OperationResponse "Insufficient funds"
// @Failure 422 {object} dto.OperationResponse "Amount is not positive, above the maximum or has sub-cent digits"
// @Failure 500 {object} dto.ErrorResponse
// @Router /atm/withdraw [post]
func (h *atmHandler) withdraw(c *gin.Context) {
	amount, ok := h.bindAmount(c)
	if !ok {
		return
	}
	n, err := h.atm.Withdraw(c.Request.Context(), amount)
	h.respond(c, n, err)
}

// bindAmount parses the request body. Malformed input is answered with 400 and never
// reaches the ATM. The money tag has already run ParseAmount, so the second parse
// below only converts.
func (h *atmHandler) bindAmount(c *gin.Context) (decimal.Decimal, bool) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind amount request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: utils.ParseErrorMessage})
		return decimal.Zero, false
	}

	amount, err := utils.ParseAmount(req.Amount, h.currency.Symbol)
	if err != nil {
		logger.Warn("Failed to parse amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: utils.ParseErrorMessage})
		return decimal.Zero, false
	}
	return amount, true
}

func (h *atmHandler) respond(c *gin.Context, n domain.Notification, err error) {
	logger := middleware.GetLoggerFromContext(c)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ToOperationResponse(n, h.currency))
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusConflict, dto.ToOperationResponse(n, h.currency))
	case errors.Is(err, apperrors.ErrInvalidAmount):
		c.JSON(http.StatusUnprocessableEntity, dto.ToOperationResponse(n, h.currency))
	default:
		logger.Error("ATM operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Operation failed"})
	}
}
