package settleapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// SettlementServiceName is the fully-qualified name of the SettlementService service.
const SettlementServiceName = "settleup.v1.SettlementService"

// Procedure paths, suitable for http.ServeMux routing and for matching
// connect.Spec.Procedure in interceptors.
const (
	SettlementServiceCalculateBalancesProcedure = "/settleup.v1.SettlementService/CalculateBalances"
	SettlementServiceMinimizeTransfersProcedure = "/settleup.v1.SettlementService/MinimizeTransfers"
	SettlementServiceSettleTransfersProcedure   = "/settleup.v1.SettlementService/SettleTransfers"
	SettlementServiceSplitExpenseProcedure      = "/settleup.v1.SettlementService/SplitExpense"
)

// SettlementServiceHandler is implemented by the server side of the service.
type SettlementServiceHandler interface {
	CalculateBalances(context.Context, *connect.Request[CalculateBalancesRequest]) (*connect.Response[CalculateBalancesResponse], error)
	MinimizeTransfers(context.Context, *connect.Request[MinimizeTransfersRequest]) (*connect.Response[MinimizeTransfersResponse], error)
	SettleTransfers(context.Context, *connect.Request[SettleTransfersRequest]) (*connect.Response[SettleTransfersResponse], error)
	SplitExpense(context.Context, *connect.Request[SplitExpenseRequest]) (*connect.Response[SplitExpenseResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself. The JSON codec is always registered; opts are applied after
// it.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	calculateBalances := connect.NewUnaryHandler(SettlementServiceCalculateBalancesProcedure, svc.CalculateBalances, opts...)
	minimizeTransfers := connect.NewUnaryHandler(SettlementServiceMinimizeTransfersProcedure, svc.MinimizeTransfers, opts...)
	settleTransfers := connect.NewUnaryHandler(SettlementServiceSettleTransfersProcedure, svc.SettleTransfers, opts...)
	splitExpense := connect.NewUnaryHandler(SettlementServiceSplitExpenseProcedure, svc.SplitExpense, opts...)

	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceCalculateBalancesProcedure:
			calculateBalances.ServeHTTP(w, r)
		case SettlementServiceMinimizeTransfersProcedure:
			minimizeTransfers.ServeHTTP(w, r)
		case SettlementServiceSettleTransfersProcedure:
			settleTransfers.ServeHTTP(w, r)
		case SettlementServiceSplitExpenseProcedure:
			splitExpense.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) CalculateBalances(context.Context, *connect.Request[CalculateBalancesRequest]) (*connect.Response[CalculateBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("settleup.v1.SettlementService.CalculateBalances is not implemented"))
}

func (UnimplementedSettlementServiceHandler) MinimizeTransfers(context.Context, *connect.Request[MinimizeTransfersRequest]) (*connect.Response[MinimizeTransfersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("settleup.v1.SettlementService.MinimizeTransfers is not implemented"))
}

func (UnimplementedSettlementServiceHandler) SettleTransfers(context.Context, *connect.Request[SettleTransfersRequest]) (*connect.Response[SettleTransfersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("settleup.v1.SettlementService.SettleTransfers is not implemented"))
}

func (UnimplementedSettlementServiceHandler) SplitExpense(context.Context, *connect.Request[SplitExpenseRequest]) (*connect.Response[SplitExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("settleup.v1.SettlementService.SplitExpense is not implemented"))
}

// SettlementServiceClient is a client for the settleup.v1.SettlementService service.
type SettlementServiceClient interface {
	CalculateBalances(context.Context, *connect.Request[CalculateBalancesRequest]) (*connect.Response[CalculateBalancesResponse], error)
	MinimizeTransfers(context.Context, *connect.Request[MinimizeTransfersRequest]) (*connect.Response[MinimizeTransfersResponse], error)
	SettleTransfers(context.Context, *connect.Request[SettleTransfersRequest]) (*connect.Response[SettleTransfersResponse], error)
	SplitExpense(context.Context, *connect.Request[SplitExpenseRequest]) (*connect.Response[SplitExpenseResponse], error)
}

// NewSettlementServiceClient constructs a client for the service. The base URL
// is the server root, e.g. http://localhost:8080.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &settlementServiceClient{
		calculateBalances: connect.NewClient[CalculateBalancesRequest, CalculateBalancesResponse](
			httpClient, baseURL+SettlementServiceCalculateBalancesProcedure, opts...,
		),
		minimizeTransfers: connect.NewClient[MinimizeTransfersRequest, MinimizeTransfersResponse](
			httpClient, baseURL+SettlementServiceMinimizeTransfersProcedure, opts...,
		),
		settleTransfers: connect.NewClient[SettleTransfersRequest, SettleTransfersResponse](
			httpClient, baseURL+SettlementServiceSettleTransfersProcedure, opts...,
		),
		splitExpense: connect.NewClient[SplitExpenseRequest, SplitExpenseResponse](
			httpClient, baseURL+SettlementServiceSplitExpenseProcedure, opts...,
		),
	}
}

type settlementServiceClient struct {
	calculateBalances *connect.Client[CalculateBalancesRequest, CalculateBalancesResponse]
	minimizeTransfers *connect.Client[MinimizeTransfersRequest, MinimizeTransfersResponse]
	settleTransfers   *connect.Client[SettleTransfersRequest, SettleTransfersResponse]
	splitExpense      *connect.Client[SplitExpenseRequest, SplitExpenseResponse]
}

func (c *settlementServiceClient) CalculateBalances(ctx context.Context, req *connect.Request[CalculateBalancesRequest]) (*connect.Response[CalculateBalancesResponse], error) {
	return c.calculateBalances.CallUnary(ctx, req)
}

func (c *settlementServiceClient) MinimizeTransfers(ctx context.Context, req *connect.Request[MinimizeTransfersRequest]) (*connect.Response[MinimizeTransfersResponse], error) {
	return c.minimizeTransfers.CallUnary(ctx, req)
}

func (c *settlementServiceClient) SettleTransfers(ctx context.Context, req *connect.Request[SettleTransfersRequest]) (*connect.Response[SettleTransfersResponse], error) {
	return c.settleTransfers.CallUnary(ctx, req)
}

func (c *settlementServiceClient) SplitExpense(ctx context.Context, req *connect.Request[SplitExpenseRequest]) (*connect.Response[SplitExpenseResponse], error) {
	return c.splitExpense.CallUnary(ctx, req)
}
