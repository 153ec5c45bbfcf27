package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-day format used for period identity.
const DateLayout = "2006-01-02"

// ProcessedPeriod is the idempotence marker appended once per applied pay
// period. StartDate/EndDate are calendar days; the (StartDate, EndDate) pair
// is the period's identity, Label is display-only.
type ProcessedPeriod struct {
	StartDate      string    `firestore:"startDate" json:"start_date"`
	EndDate        string    `firestore:"endDate" json:"end_date"`
	Label          string    `firestore:"label" json:"label"`
	HoursWorked    float64   `firestore:"hoursWorked" json:"hours_worked"`
	PTOEarned      float64   `firestore:"ptoEarned" json:"pto_earned"`
	BankingBalance float64   `firestore:"bankingBalance" json:"banking_balance"`
	ProcessedAt    time.Time `firestore:"processedAt" json:"processed_at"`
}

// PTOBalance is the one mutable record per (org, user), keyed "{orgID}_{userID}".
// PendingBalance belongs to the PTO-request workflow and is never touched here.
type PTOBalance struct {
	ID               string            `firestore:"-" json:"id"`
	OrganizationID   string            `firestore:"organizationID" json:"organization_id"`
	UserID           string            `firestore:"userId" json:"user_id"`
	TotalBalance     float64           `firestore:"totalBalance" json:"total_balance"`
	BankingBalance   float64           `firestore:"bankingBalance" json:"banking_balance"`
	UsedThisYear     float64           `firestore:"usedThisYear" json:"used_this_year"`
	PendingBalance   float64           `firestore:"pendingBalance" json:"pending_balance"`
	ProcessedPeriods []ProcessedPeriod `firestore:"processedPeriods" json:"processed_periods"`
	LastUpdated      time.Time         `firestore:"lastUpdated" json:"last_updated"`
}

// BalanceID builds the balance document key for an (org, user) pair.
func BalanceID(orgID, userID string) string {
	return fmt.Sprintf("%s_%s", orgID, userID)
}

// NewPTOBalance returns the lazily created zero balance for a user.
func NewPTOBalance(orgID, userID string) *PTOBalance {
	return &PTOBalance{
		ID:             BalanceID(orgID, userID),
		OrganizationID: orgID,
		UserID:         userID,
	}
}

// Normalize repairs legacy records in one place: balances written before the
// banking field existed, and non-finite numbers from bad imports, all default
// to zero.
func (b *PTOBalance) Normalize() {
	b.TotalBalance = sanitizeHours(b.TotalBalance)
	b.BankingBalance = sanitizeHours(b.BankingBalance)
	b.UsedThisYear = sanitizeHours(b.UsedThisYear)
	if b.ID == "" && b.OrganizationID != "" && b.UserID != "" {
		b.ID = BalanceID(b.OrganizationID, b.UserID)
	}
}

// HasProcessed reports whether the (start, end) period was already applied.
func (b *PTOBalance) HasProcessed(startDate, endDate string) bool {
	for _, p := range b.ProcessedPeriods {
		if p.StartDate == startDate && p.EndDate == endDate {
			return true
		}
	}
	return false
}

func sanitizeHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
