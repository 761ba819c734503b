package domain

import "time"

// Frequency is the nominal contribution cadence of a savings goal. It is used
// only to project an estimated completion date, not enforced as a schedule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// SavingStatus is the lifecycle state of a savings goal. active -> completed
// is one way, triggered by a contribution crossing the target. Cancelled goals
// are removed rather than retained.
type SavingStatus string

const (
	SavingActive    SavingStatus = "active"
	SavingCompleted SavingStatus = "completed"
	SavingCancelled SavingStatus = "cancelled"
)

// SavingsGoal tracks progress toward a catalog product's price. The product
// and its price are snapshotted at creation and never re-read.
//
// Invariant: 0 <= CurrentAmount <= TargetAmount.
type SavingsGoal struct {
	SavingID           string       `json:"savingID"`
	Product            Product      `json:"product"`
	TargetAmount       int64        `json:"targetAmount"`
	CurrentAmount      int64        `json:"currentAmount"`
	ContributionAmount int64        `json:"contributionAmount"`
	Frequency          Frequency    `json:"frequency"`
	StartDate          time.Time    `json:"startDate"`
	EstimatedEndDate   time.Time    `json:"estimatedEndDate"`
	Status             SavingStatus `json:"status"`
	CompletedDate      *time.Time   `json:"completedDate,omitempty"`
}

// Remaining returns the amount still needed to reach the target.
func (g *SavingsGoal) Remaining() int64 {
	return g.TargetAmount - g.CurrentAmount
}

// SavingsBook holds a user's goals, split into in-progress and finished lists.
// Goals in the completed list are immutable.
type SavingsBook struct {
	Active    []SavingsGoal `json:"active"`
	Completed []SavingsGoal `json:"completed"`
}

// TotalSaved sums the accumulated amounts across all goals, active and completed.
func (b *SavingsBook) TotalSaved() int64 {
	var total int64
	for _, g := range b.Active {
		total += g.CurrentAmount
	}
	for _, g := range b.Completed {
		total += g.CurrentAmount
	}
	return total
}

// DaysToComplete projects how many days a goal needs to reach target, assuming
// one contribution per period. Months are approximated as 30 days.
func DaysToComplete(target, contribution int64, frequency Frequency) int64 {
	periods := (target + contribution - 1) / contribution
	switch frequency {
	case FrequencyDaily:
		return periods
	case FrequencyWeekly:
		return periods * 7
	case FrequencyMonthly:
		return periods * 30
	default:
		return periods
	}
}

// EstimateEndDate computes the projected completion date for a goal started at
// start. The projection is fixed at creation time.
func EstimateEndDate(start time.Time, target, contribution int64, frequency Frequency) time.Time {
	days := DaysToComplete(target, contribution, frequency)
	return start.AddDate(0, 0, int(days))
}
