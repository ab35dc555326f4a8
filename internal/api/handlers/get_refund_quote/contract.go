package get_refund_quote

import (
	"context"

	refundQuote "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_refund_quote"
)

type GetRefundQuoteUseCase interface {
	Execute(ctx context.Context, req *refundQuote.Request) (*refundQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
