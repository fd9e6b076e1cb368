package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardtoken/internal/httputil"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// paymentErrors answers payment input errors with 400. The first match wins.
// ErrInvalidCard also covers expired and checksum failures, so the answer
// never says why a card was rejected.
var paymentErrors = []httputil.ErrorMapping{
	{
		Target:  paymentDomain.ErrMissingField,
		Status:  http.StatusBadRequest,
		Code:    "incomplete_input",
		Message: "Required information is missing",
	},
	{
		Target:  paymentDomain.ErrInvalidExpirationFormat,
		Status:  http.StatusBadRequest,
		Code:    "invalid_expiration_format",
		Message: "Expiration date must be MM/YYYY or MM/YY",
	},
	{
		Target:  paymentDomain.ErrInvalidDate,
		Status:  http.StatusBadRequest,
		Code:    "invalid_expiration_date",
		Message: "Expiration date is not a valid calendar month",
	},
	{
		Target:  paymentDomain.ErrInvalidCard,
		Status:  http.StatusBadRequest,
		Code:    "invalid_card",
		Message: "Invalid credit card",
	},
	{
		Target:  paymentDomain.ErrInvalidAmountFormat,
		Status:  http.StatusBadRequest,
		Code:    "invalid_amount_format",
		Message: "Amount must be a decimal number",
	},
}

func handlePaymentError(c *gin.Context, err error, logger *slog.Logger) {
	httputil.HandleMappedErrorGin(c, err, logger, paymentErrors...)
}
