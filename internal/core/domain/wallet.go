package domain

import "time"

// TransactionType categorizes a money movement in the wallet's audit trail.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionSavings    TransactionType = "savings"
)

// TransactionStatus is the settlement state of a transaction. All locally
// executed operations settle immediately as completed.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is one entry in the wallet's audit trail. Amounts are positive
// integers in kobo; the type carries the direction.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	Type          TransactionType   `json:"type"`
	Amount        int64             `json:"amount"`
	Description   string            `json:"description"`
	Date          time.Time         `json:"date"`
	Status        TransactionStatus `json:"status"`
}

// Wallet tracks a user's spendable and earmarked funds along with the ordered
// audit trail of money movements (most recent first).
//
// Invariants: Balance >= 0, 0 <= LockedFunds <= Balance.
type Wallet struct {
	UserID       string        `json:"userID"`
	Balance      int64         `json:"balance"`
	LockedFunds  int64         `json:"lockedFunds"`
	Transactions []Transaction `json:"transactions"`
}

// Withdrawable returns the portion of the balance not earmarked by savings goals.
func (w *Wallet) Withdrawable() int64 {
	return w.Balance - w.LockedFunds
}
