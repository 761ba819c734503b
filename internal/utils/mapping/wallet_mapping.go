package mapping

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/models"
)

// ToWalletRecord converts a domain Wallet to its persisted record form.
func ToWalletRecord(w domain.Wallet) models.WalletRecord {
	txns := make([]models.Transaction, len(w.Transactions))
	for i, t := range w.Transactions {
		txns[i] = models.Transaction{
			TransactionID: t.TransactionID,
			Type:          string(t.Type),
			Amount:        t.Amount,
			Description:   t.Description,
			Date:          t.Date,
			Status:        string(t.Status),
		}
	}
	return models.WalletRecord{
		SchemaVersion: models.WalletSchemaVersion,
		Balance:       w.Balance,
		LockedFunds:   w.LockedFunds,
		Transactions:  txns,
	}
}

// ToDomainWallet converts a persisted wallet record to a domain Wallet.
func ToDomainWallet(userID string, r models.WalletRecord) domain.Wallet {
	txns := make([]domain.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txns[i] = domain.Transaction{
			TransactionID: t.TransactionID,
			Type:          domain.TransactionType(t.Type),
			Amount:        t.Amount,
			Description:   t.Description,
			Date:          t.Date,
			Status:        domain.TransactionStatus(t.Status),
		}
	}
	return domain.Wallet{
		UserID:       userID,
		Balance:      r.Balance,
		LockedFunds:  r.LockedFunds,
		Transactions: txns,
	}
}
