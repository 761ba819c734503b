package models

import "time"

// SavingsSchemaVersion is the current layout of the savings state record.
const SavingsSchemaVersion = 1

// ProductSnapshot is the catalog entry copied into a goal at creation time.
type ProductSnapshot struct {
	ProductID   string `json:"productID"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageURL"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Saving is the JSON shape of one savings goal inside the state record.
type Saving struct {
	SavingID           string          `json:"savingID"`
	Product            ProductSnapshot `json:"product"`
	TargetAmount       int64           `json:"targetAmount"`
	CurrentAmount      int64           `json:"currentAmount"`
	ContributionAmount int64           `json:"contributionAmount"`
	Frequency          string          `json:"frequency"`
	StartDate          time.Time       `json:"startDate"`
	EstimatedEndDate   time.Time       `json:"estimatedEndDate"`
	Status             string          `json:"status"`
	CompletedDate      *time.Time      `json:"completedDate,omitempty"`
}

// SavingsRecord is the full savings state persisted as a single versioned
// JSONB document, keyed by user.
type SavingsRecord struct {
	SchemaVersion int      `json:"schemaVersion"`
	Active        []Saving `json:"active"`
	Completed     []Saving `json:"completed"`
}
