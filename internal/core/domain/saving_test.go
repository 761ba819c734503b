package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysToComplete(t *testing.T) {
	tests := []struct {
		name         string
		target       int64
		contribution int64
		frequency    Frequency
		expected     int64
	}{
		{"monthly even split", 120000, 10000, FrequencyMonthly, 12 * 30},
		{"monthly rounds up", 100000, 30000, FrequencyMonthly, 4 * 30},
		{"weekly", 70000, 10000, FrequencyWeekly, 7 * 7},
		{"daily", 5000, 1000, FrequencyDaily, 5},
		{"single contribution covers target", 1000, 5000, FrequencyDaily, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysToComplete(tt.target, tt.contribution, tt.frequency))
		})
	}
}

func TestEstimateEndDate(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// periods = ceil(120000/10000) = 12, monthly -> 360 days
	end := EstimateEndDate(start, 120000, 10000, FrequencyMonthly)
	assert.Equal(t, start.AddDate(0, 0, 360), end)
}

func TestWalletWithdrawable(t *testing.T) {
	w := Wallet{Balance: 50000, LockedFunds: 20000}
	assert.Equal(t, int64(30000), w.Withdrawable())
}

func TestSavingsBookTotalSaved(t *testing.T) {
	book := SavingsBook{
		Active: []SavingsGoal{
			{CurrentAmount: 10000},
			{CurrentAmount: 2500},
		},
		Completed: []SavingsGoal{
			{CurrentAmount: 100000},
		},
	}
	assert.Equal(t, int64(112500), book.TotalSaved())
}
