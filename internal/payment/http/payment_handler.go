// Package http provides HTTP handlers for card tokenization and sale authorization.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardtoken/internal/httputil"
	"github.com/allisson/cardtoken/internal/payment/http/dto"
	paymentUseCase "github.com/allisson/cardtoken/internal/payment/usecase"
	customValidation "github.com/allisson/cardtoken/internal/validation"
)

// PaymentHandler handles HTTP requests for tokenize and authorize operations.
type PaymentHandler struct {
	paymentUseCase paymentUseCase.PaymentUseCase
	logger         *slog.Logger
}

// NewPaymentHandler creates a new payment handler with required dependencies.
func NewPaymentHandler(
	paymentUseCase paymentUseCase.PaymentUseCase,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// TokenizeHandler validates a card and returns its token.
// POST /v1/cards/tokenize
// Returns 201 Created with the token.
func (h *PaymentHandler) TokenizeHandler(c *gin.Context) {
	var req dto.TokenizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.paymentUseCase.Tokenize(c.Request.Context(), req.ToInput())
	if err != nil {
		handlePaymentError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenToTokenizeResponse(token))
}

// AuthorizeHandler submits a sale against a token.
// POST /v1/transactions
// Returns 201 Created with the transaction descriptor.
func (h *PaymentHandler) AuthorizeHandler(c *gin.Context) {
	var req dto.AuthorizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	transaction, err := h.paymentUseCase.Authorize(c.Request.Context(), req.ToInput())
	if err != nil {
		handlePaymentError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransactionToResponse(transaction))
}
