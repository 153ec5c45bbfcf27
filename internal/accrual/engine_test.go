package accrual

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/payperiod"
)

var testNow = time.Date(2025, time.January, 15, 6, 0, 0, 0, time.UTC)

func testPeriod() payperiod.Period {
	return payperiod.Period{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 14, 23, 59, 59, 0, time.UTC),
		Label: "Jan 1-14, 2025",
	}
}

func testPolicy() domain.PTOSettings {
	return domain.PTOSettings{
		Enabled:       true,
		AccrualRate:   1,
		AccrualPeriod: 40,
		MaxAccrual:    240,
	}
}

func TestAccrue_CrossesThreshold(t *testing.T) {
	balance := domain.NewPTOBalance("org1", "user1")
	balance.BankingBalance = 35

	result := Accrue(balance, 10, testPolicy(), testPeriod(), testNow)

	assert.InDelta(t, 1, result.HoursAdded, 1e-9)
	assert.InDelta(t, 1, result.PTOEarned, 1e-9)
	assert.True(t, result.Recorded)
	assert.InDelta(t, 1, balance.TotalBalance, 1e-9)
	assert.InDelta(t, 5, balance.BankingBalance, 1e-9)

	require.Len(t, balance.ProcessedPeriods, 1)
	marker := balance.ProcessedPeriods[0]
	assert.Equal(t, "2025-01-01", marker.StartDate)
	assert.Equal(t, "2025-01-14", marker.EndDate)
	assert.Equal(t, "Jan 1-14, 2025", marker.Label)
	assert.InDelta(t, 10, marker.HoursWorked, 1e-9)
	assert.InDelta(t, 1, marker.PTOEarned, 1e-9)
	assert.InDelta(t, 5, marker.BankingBalance, 1e-9)
	assert.Equal(t, testNow, marker.ProcessedAt)
}

func TestAccrue_CapTruncates(t *testing.T) {
	balance := domain.NewPTOBalance("org1", "user1")
	balance.TotalBalance = 239

	result := Accrue(balance, 200, testPolicy(), testPeriod(), testNow)

	// 200 hours earn 5 blocks, but only 1 hour fits under the cap.
	assert.InDelta(t, 5, result.PTOEarned, 1e-9)
	assert.InDelta(t, 1, result.HoursAdded, 1e-9)
	assert.InDelta(t, 240, balance.TotalBalance, 1e-9)
	assert.InDelta(t, 0, balance.BankingBalance, 1e-9)
}

func TestAccrue_DuplicatePeriodIsNoOp(t *testing.T) {
	balance := domain.NewPTOBalance("org1", "user1")
	first := Accrue(balance, 45, testPolicy(), testPeriod(), testNow)
	require.True(t, first.Recorded)

	snapshot := *balance
	second := Accrue(balance, 45, testPolicy(), testPeriod(), testNow.Add(24*time.Hour))

	assert.True(t, second.AlreadyProcessed)
	assert.Zero(t, second.HoursAdded)
	assert.Equal(t, snapshot.TotalBalance, balance.TotalBalance)
	assert.Equal(t, snapshot.BankingBalance, balance.BankingBalance)
	assert.Len(t, balance.ProcessedPeriods, 1)
}

func TestAccrue_EmptyPeriodNotRecorded(t *testing.T) {
	balance := domain.NewPTOBalance("org1", "user1")

	result := Accrue(balance, 0, testPolicy(), testPeriod(), testNow)

	assert.False(t, result.Recorded)
	assert.Zero(t, result.HoursAdded)
	assert.Empty(t, balance.ProcessedPeriods)
	assert.True(t, balance.LastUpdated.IsZero())
}

func TestAccrue_BankedOnlyPeriodStillRecorded(t *testing.T) {
	balance := domain.NewPTOBalance("org1", "user1")

	// 10 hours bank but don't cross the 40-hour threshold: the period must
	// still be marked processed so those hours aren't banked again.
	result := Accrue(balance, 10, testPolicy(), testPeriod(), testNow)

	assert.True(t, result.Recorded)
	assert.Zero(t, result.HoursAdded)
	assert.InDelta(t, 10, balance.BankingBalance, 1e-9)
	require.Len(t, balance.ProcessedPeriods, 1)
	assert.Zero(t, balance.ProcessedPeriods[0].PTOEarned)
}

func TestAccrue_LegacyFieldsDefaultToZero(t *testing.T) {
	balance := &domain.PTOBalance{
		OrganizationID: "org1",
		UserID:         "user1",
		TotalBalance:   math.NaN(),
		BankingBalance: -3,
	}

	result := Accrue(balance, 45, testPolicy(), testPeriod(), testNow)

	assert.InDelta(t, 1, result.HoursAdded, 1e-9)
	assert.InDelta(t, 1, balance.TotalBalance, 1e-9)
	assert.InDelta(t, 5, balance.BankingBalance, 1e-9)
}

func TestAccrue_ZeroAccrualPeriodBanksEverything(t *testing.T) {
	policy := testPolicy()
	policy.AccrualPeriod = 0

	balance := domain.NewPTOBalance("org1", "user1")
	result := Accrue(balance, 12, policy, testPeriod(), testNow)

	assert.True(t, result.Recorded)
	assert.Zero(t, result.HoursAdded)
	assert.InDelta(t, 12, balance.BankingBalance, 1e-9)
}

// Conservation: banked hours are either converted or carried, never lost.
func TestAccrue_Conservation(t *testing.T) {
	policy := testPolicy()
	cases := []struct{ banking, worked float64 }{
		{0, 0.5}, {12.25, 39.75}, {39.9, 0.2}, {0, 120}, {35, 10},
	}
	for _, tc := range cases {
		balance := domain.NewPTOBalance("org1", "user1")
		balance.BankingBalance = tc.banking

		Accrue(balance, tc.worked, policy, testPeriod(), testNow)

		newBanking := tc.banking + tc.worked
		blocks := math.Floor(newBanking / policy.AccrualPeriod)
		assert.InDelta(t, newBanking, balance.BankingBalance+blocks*policy.AccrualPeriod, 1e-9)
		assert.GreaterOrEqual(t, balance.BankingBalance, 0.0)
		assert.Less(t, balance.BankingBalance, policy.AccrualPeriod)
		assert.LessOrEqual(t, balance.TotalBalance, policy.MaxAccrual)
	}
}
