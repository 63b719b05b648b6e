package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/pkg/settleapi"
)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	settleapi.UnimplementedSettlementServiceHandler
	engine  *calculator.Engine
	metrics *metrics.Metrics
}

// NewSettlementService creates a new SettlementService backed by the given
// calculator engine. m may be nil.
func NewSettlementService(engine *calculator.Engine, m *metrics.Metrics) *SettlementService {
	return &SettlementService{engine: engine, metrics: m}
}

// CalculateBalances aggregates transfers into net balances.
func (s *SettlementService) CalculateBalances(ctx context.Context, req *connect.Request[settleapi.CalculateBalancesRequest]) (*connect.Response[settleapi.CalculateBalancesResponse], error) {
	slog.Info("CalculateBalances request received", "transfers_count", len(req.Msg.Transfers))

	if req.Msg.Transfers == nil {
		return nil, toConnectError(ErrNullTransfers)
	}

	balances, err := s.engine.Balances(ctx, req.Msg.Transfers)
	if err != nil {
		slog.Error("CalculateBalances failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("CalculateBalances successful",
		"transfers_count", len(req.Msg.Transfers),
		"balances_count", len(balances),
		"parallel", s.engine.Parallel(len(req.Msg.Transfers)),
	)

	return connect.NewResponse(&settleapi.CalculateBalancesResponse{
		Balances: balances,
	}), nil
}

// MinimizeTransfers computes the transfers that settle a balance set.
func (s *SettlementService) MinimizeTransfers(ctx context.Context, req *connect.Request[settleapi.MinimizeTransfersRequest]) (*connect.Response[settleapi.MinimizeTransfersResponse], error) {
	slog.Info("MinimizeTransfers request received", "balances_count", len(req.Msg.Balances))

	if req.Msg.Balances == nil {
		return nil, toConnectError(ErrNullBalances)
	}

	settlement := s.engine.Minimize(req.Msg.Balances)
	s.metrics.ObserveSettlement(len(settlement.Transfers))

	if !settlement.IsSettled() {
		slog.Warn("MinimizeTransfers left residual balances", "balances_count", len(req.Msg.Balances))
	}
	slog.Info("MinimizeTransfers successful", "transfers_count", len(settlement.Transfers))

	return connect.NewResponse(&settleapi.MinimizeTransfersResponse{
		UpdatedBalances: settlement.UpdatedBalances,
		Transactions:    settlement.Transfers,
	}), nil
}

// SettleTransfers aggregates transfers and settles the resulting balances in
// one call.
func (s *SettlementService) SettleTransfers(ctx context.Context, req *connect.Request[settleapi.SettleTransfersRequest]) (*connect.Response[settleapi.SettleTransfersResponse], error) {
	slog.Info("SettleTransfers request received", "transfers_count", len(req.Msg.Transfers))

	if req.Msg.Transfers == nil {
		return nil, toConnectError(ErrNullTransfers)
	}

	balances, settlement, err := s.engine.Settle(ctx, req.Msg.Transfers)
	if err != nil {
		slog.Error("SettleTransfers failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ObserveSettlement(len(settlement.Transfers))

	slog.Info("SettleTransfers successful",
		"balances_count", len(balances),
		"settlement_transfers_count", len(settlement.Transfers),
	)

	return connect.NewResponse(&settleapi.SettleTransfersResponse{
		Balances:        balances,
		UpdatedBalances: settlement.UpdatedBalances,
		Transactions:    settlement.Transfers,
	}), nil
}

// SplitExpense expands a shared expense into transfers from the payer.
func (s *SettlementService) SplitExpense(ctx context.Context, req *connect.Request[settleapi.SplitExpenseRequest]) (*connect.Response[settleapi.SplitExpenseResponse], error) {
	expense := req.Msg.Expense
	if expense == nil {
		return nil, toConnectError(ErrMissingExpense)
	}

	slog.Info("SplitExpense request received",
		"payer", expense.Payer,
		"participants_count", len(expense.Participants),
		"items_count", len(expense.Items),
	)

	transfers, err := s.engine.Split(*expense)
	if err != nil {
		slog.Error("SplitExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("SplitExpense successful", "transfers_count", len(transfers))

	return connect.NewResponse(&settleapi.SplitExpenseResponse{
		Transfers: transfers,
	}), nil
}
