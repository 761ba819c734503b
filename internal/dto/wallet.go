package dto

import (
	"time"

	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// AddFundsRequest defines the data needed to top up the wallet.
// Amount is in Naira; sub-kobo precision is rejected.
type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// WithdrawFundsRequest defines the data needed to withdraw from the wallet.
type WithdrawFundsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a single wallet transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Type          domain.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount"`
	Description   string                   `json:"description"`
	Date          time.Time                `json:"date"`
	Status        domain.TransactionStatus `json:"status"`
}

// WalletResponse defines the data returned for the wallet.
// All amounts are in Naira.
type WalletResponse struct {
	Balance      decimal.Decimal       `json:"balance"`
	LockedFunds  decimal.Decimal       `json:"lockedFunds"`
	Withdrawable decimal.Decimal       `json:"withdrawable"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTransactionsResponse wraps a page of the transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		Amount:        utils.KoboToNaira(t.Amount),
		Description:   t.Description,
		Date:          t.Date,
		Status:        t.Status,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ToWalletResponse converts a domain.Wallet to a WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		Balance:      utils.KoboToNaira(w.Balance),
		LockedFunds:  utils.KoboToNaira(w.LockedFunds),
		Withdrawable: utils.KoboToNaira(w.Withdrawable()),
		Transactions: ToListTransactionResponse(w.Transactions),
	}
}
