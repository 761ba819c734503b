package mapping

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/models"
)

func toModelSaving(g domain.SavingsGoal) models.Saving {
	return models.Saving{
		SavingID: g.SavingID,
		Product: models.ProductSnapshot{
			ProductID:   g.Product.ProductID,
			Name:        g.Product.Name,
			Price:       g.Product.Price,
			ImageURL:    g.Product.ImageURL,
			Category:    g.Product.Category,
			Description: g.Product.Description,
		},
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		ContributionAmount: g.ContributionAmount,
		Frequency:          string(g.Frequency),
		StartDate:          g.StartDate,
		EstimatedEndDate:   g.EstimatedEndDate,
		Status:             string(g.Status),
		CompletedDate:      g.CompletedDate,
	}
}

func toDomainSaving(m models.Saving) domain.SavingsGoal {
	return domain.SavingsGoal{
		SavingID: m.SavingID,
		Product: domain.Product{
			ProductID:   m.Product.ProductID,
			Name:        m.Product.Name,
			Price:       m.Product.Price,
			ImageURL:    m.Product.ImageURL,
			Category:    m.Product.Category,
			Description: m.Product.Description,
		},
		TargetAmount:       m.TargetAmount,
		CurrentAmount:      m.CurrentAmount,
		ContributionAmount: m.ContributionAmount,
		Frequency:          domain.Frequency(m.Frequency),
		StartDate:          m.StartDate,
		EstimatedEndDate:   m.EstimatedEndDate,
		Status:             domain.SavingStatus(m.Status),
		CompletedDate:      m.CompletedDate,
	}
}

// ToSavingsRecord converts a domain SavingsBook to its persisted record form.
func ToSavingsRecord(b domain.SavingsBook) models.SavingsRecord {
	active := make([]models.Saving, len(b.Active))
	for i, g := range b.Active {
		active[i] = toModelSaving(g)
	}
	completed := make([]models.Saving, len(b.Completed))
	for i, g := range b.Completed {
		completed[i] = toModelSaving(g)
	}
	return models.SavingsRecord{
		SchemaVersion: models.SavingsSchemaVersion,
		Active:        active,
		Completed:     completed,
	}
}

// ToDomainSavingsBook converts a persisted savings record to a domain SavingsBook.
func ToDomainSavingsBook(r models.SavingsRecord) domain.SavingsBook {
	active := make([]domain.SavingsGoal, len(r.Active))
	for i, m := range r.Active {
		active[i] = toDomainSaving(m)
	}
	completed := make([]domain.SavingsGoal, len(r.Completed))
	for i, m := range r.Completed {
		completed[i] = toDomainSaving(m)
	}
	return domain.SavingsBook{
		Active:    active,
		Completed: completed,
	}
}
