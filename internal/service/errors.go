package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
)

var (
	ErrNullTransfers  = errors.New("transfers must not be null")
	ErrNullBalances   = errors.New("balances must not be null")
	ErrMissingExpense = errors.New("expense is required")
)

// toConnectError maps service and calculator errors to Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, ErrNullTransfers),
		errors.Is(err, ErrNullBalances),
		errors.Is(err, ErrMissingExpense),
		errors.Is(err, calculator.ErrMissingPayer),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrZeroSubtotal):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
