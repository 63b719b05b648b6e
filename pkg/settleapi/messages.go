package settleapi

import "github.com/mmynk/settleup/internal/models"

type CalculateBalancesRequest struct {
	Transfers []models.Transfer `json:"transfers"`
}

type CalculateBalancesResponse struct {
	Balances []models.Balance `json:"balances"`
}

type MinimizeTransfersRequest struct {
	Balances []models.Balance `json:"balances"`
}

type MinimizeTransfersResponse struct {
	UpdatedBalances []models.Balance  `json:"updatedBalances"`
	Transactions    []models.Transfer `json:"transactions"`
}

// SettleTransfersRequest asks for aggregation followed by minimization.
type SettleTransfersRequest struct {
	Transfers []models.Transfer `json:"transfers"`
}

type SettleTransfersResponse struct {
	Balances        []models.Balance  `json:"balances"`
	UpdatedBalances []models.Balance  `json:"updatedBalances"`
	Transactions    []models.Transfer `json:"transactions"`
}

type SplitExpenseRequest struct {
	Expense *models.Expense `json:"expense"`
}

type SplitExpenseResponse struct {
	Transfers []models.Transfer `json:"transfers"`
}
