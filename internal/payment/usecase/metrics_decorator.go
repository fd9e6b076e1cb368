package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/cardtoken/internal/errors"
	"github.com/allisson/cardtoken/internal/metrics"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

const metricsDomain = "payment"

// rejectionReasons maps input errors to the reason label. Order matters: the
// card reasons wrap ErrInvalidCard and must be checked before it.
var rejectionReasons = []struct {
	err    error
	reason string
}{
	{paymentDomain.ErrCardExpired, "card_expired"},
	{paymentDomain.ErrCardChecksum, "card_checksum"},
	{paymentDomain.ErrInvalidCard, "invalid_card"},
	{paymentDomain.ErrMissingField, "missing_field"},
	{paymentDomain.ErrInvalidExpirationFormat, "invalid_expiration_format"},
	{paymentDomain.ErrInvalidDate, "invalid_expiration_date"},
	{paymentDomain.ErrInvalidAmountFormat, "invalid_amount_format"},
	{paymentDomain.ErrTokenNotFound, "token_not_found"},
}

// paymentUseCaseWithMetrics decorates PaymentUseCase with metrics instrumentation.
type paymentUseCaseWithMetrics struct {
	next    PaymentUseCase
	metrics metrics.BusinessMetrics
}

// NewPaymentUseCaseWithMetrics wraps a PaymentUseCase with metrics recording.
func NewPaymentUseCaseWithMetrics(useCase PaymentUseCase, m metrics.BusinessMetrics) PaymentUseCase {
	return &paymentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Tokenize records metrics for tokenize operations.
func (p *paymentUseCaseWithMetrics) Tokenize(
	ctx context.Context,
	input *paymentDomain.TokenizeInput,
) (*paymentDomain.Token, error) {
	start := time.Now()
	token, err := p.next.Tokenize(ctx, input)
	p.observe(ctx, "tokenize", start, err)
	return token, err
}

// Authorize records metrics for authorize operations.
func (p *paymentUseCaseWithMetrics) Authorize(
	ctx context.Context,
	input *paymentDomain.AuthorizeInput,
) (*paymentDomain.Transaction, error) {
	start := time.Now()
	transaction, err := p.next.Authorize(ctx, input)
	p.observe(ctx, "authorize", start, err)
	return transaction, err
}

func (p *paymentUseCaseWithMetrics) observe(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
		if reason, ok := rejectionReason(err); ok {
			p.metrics.RecordRejection(ctx, metricsDomain, operation, reason)
		}
	}

	p.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	p.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// rejectionReason returns the label for input errors; ok is false for
// infrastructure failures.
func rejectionReason(err error) (string, bool) {
	for _, r := range rejectionReasons {
		if apperrors.Is(err, r.err) {
			return r.reason, true
		}
	}
	return "", false
}
