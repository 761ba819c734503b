package models

import "time"

// WalletSchemaVersion is the current layout of the wallet state record.
// Records persisted with a different version are rejected on load.
const WalletSchemaVersion = 1

// Transaction is the JSON shape of one audit trail entry inside the wallet
// state record.
type Transaction struct {
	TransactionID string    `json:"transactionID"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

// WalletRecord is the full wallet state persisted as a single versioned JSONB
// document, keyed by user.
type WalletRecord struct {
	SchemaVersion int           `json:"schemaVersion"`
	Balance       int64         `json:"balance"`
	LockedFunds   int64         `json:"lockedFunds"`
	Transactions  []Transaction `json:"transactions"`
}
