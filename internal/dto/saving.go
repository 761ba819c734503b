package dto

import (
	"time"

	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateSavingRequest defines the data needed to start a savings goal.
// ContributionAmount is in Naira per contribution period.
type CreateSavingRequest struct {
	ProductID          string           `json:"productID" binding:"required"`
	ContributionAmount decimal.Decimal  `json:"contributionAmount" binding:"required"`
	Frequency          domain.Frequency `json:"frequency" binding:"required,oneof=daily weekly monthly"`
}

// ContributeRequest defines the data needed to pay into a goal.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SavingResponse defines the data returned for a savings goal.
// All amounts are in Naira.
type SavingResponse struct {
	SavingID           string              `json:"savingID"`
	Product            ProductResponse     `json:"product"`
	TargetAmount       decimal.Decimal     `json:"targetAmount"`
	CurrentAmount      decimal.Decimal     `json:"currentAmount"`
	RemainingAmount    decimal.Decimal     `json:"remainingAmount"`
	ContributionAmount decimal.Decimal     `json:"contributionAmount"`
	Frequency          domain.Frequency    `json:"frequency"`
	StartDate          time.Time           `json:"startDate"`
	EstimatedEndDate   time.Time           `json:"estimatedEndDate"`
	Status             domain.SavingStatus `json:"status"`
	CompletedDate      *time.Time          `json:"completedDate,omitempty"`
}

// SavingsBookResponse wraps the active and completed goal lists.
type SavingsBookResponse struct {
	Active     []SavingResponse `json:"active"`
	Completed  []SavingResponse `json:"completed"`
	TotalSaved decimal.Decimal  `json:"totalSaved"`
}

// ContributionResponse is returned after paying into a goal. Credited is the
// amount actually applied after target clamping.
type ContributionResponse struct {
	Saving   SavingResponse  `json:"saving"`
	Credited decimal.Decimal `json:"credited"`
}

// ToSavingResponse converts a domain.SavingsGoal to a SavingResponse DTO
func ToSavingResponse(g *domain.SavingsGoal) SavingResponse {
	return SavingResponse{
		SavingID:           g.SavingID,
		Product:            ToProductResponse(&g.Product),
		TargetAmount:       utils.KoboToNaira(g.TargetAmount),
		CurrentAmount:      utils.KoboToNaira(g.CurrentAmount),
		RemainingAmount:    utils.KoboToNaira(g.Remaining()),
		ContributionAmount: utils.KoboToNaira(g.ContributionAmount),
		Frequency:          g.Frequency,
		StartDate:          g.StartDate,
		EstimatedEndDate:   g.EstimatedEndDate,
		Status:             g.Status,
		CompletedDate:      g.CompletedDate,
	}
}

// ToListSavingResponse converts a slice of domain.SavingsGoal to SavingResponse DTOs
func ToListSavingResponse(goals []domain.SavingsGoal) []SavingResponse {
	res := make([]SavingResponse, len(goals))
	for i, g := range goals {
		res[i] = ToSavingResponse(&g)
	}
	return res
}

// ToSavingsBookResponse converts a domain.SavingsBook to a SavingsBookResponse DTO
func ToSavingsBookResponse(b *domain.SavingsBook) SavingsBookResponse {
	return SavingsBookResponse{
		Active:     ToListSavingResponse(b.Active),
		Completed:  ToListSavingResponse(b.Completed),
		TotalSaved: utils.KoboToNaira(b.TotalSaved()),
	}
}
