package domain

// PayPeriodType identifies how an organization batches time entries for accrual.
type PayPeriodType string

const (
	PayPeriodWeekly      PayPeriodType = "weekly"
	PayPeriodBiWeekly    PayPeriodType = "bi-weekly"
	PayPeriodSemiMonthly PayPeriodType = "semi-monthly"
	PayPeriodMonthly     PayPeriodType = "monthly"
)

// PTOSettings is an organization's accrual policy.
// AccrualPeriod is the banked-hours threshold (e.g. 40) that converts into
// AccrualRate hours of PTO. MaxAccrual caps the usable balance.
type PTOSettings struct {
	Enabled       bool    `firestore:"enabled" json:"enabled"`
	AccrualRate   float64 `firestore:"accrualRate" json:"accrual_rate"`
	AccrualPeriod float64 `firestore:"accrualPeriod" json:"accrual_period"`
	MaxAccrual    float64 `firestore:"maxAccrual" json:"max_accrual"`
}

// PayPeriodConfig holds the type-specific knobs. Only the fields relevant to
// the configured PayPeriodType are meaningful.
type PayPeriodConfig struct {
	// Weekly: 0 (Sunday) through 6 (Saturday).
	DayOfWeek int `firestore:"dayOfWeek" json:"day_of_week"`
	// Bi-weekly: ISO date (YYYY-MM-DD) anchoring the 14-day cycle.
	StartDate string `firestore:"startDate" json:"start_date"`
	// Semi-monthly: the two days of month splitting each month (defaults 1 and 15).
	FirstDate  int `firestore:"firstDate" json:"first_date"`
	SecondDate int `firestore:"secondDate" json:"second_date"`
	// Monthly: day of month the period starts on (default 1).
	DayOfMonth int `firestore:"dayOfMonth" json:"day_of_month"`
}

// PayPeriodSettings is an organization's pay-period configuration.
type PayPeriodSettings struct {
	IsActive bool            `firestore:"isActive" json:"is_active"`
	Type     PayPeriodType   `firestore:"type" json:"type"`
	Config   PayPeriodConfig `firestore:"config" json:"config"`
}

// Organization is a read-only input to the accrual engine; lifecycle is
// managed by the scheduling product.
type Organization struct {
	ID                string            `firestore:"-" json:"id"`
	Name              string            `firestore:"name" json:"name"`
	PTOSettings       PTOSettings       `firestore:"ptoSettings" json:"pto_settings"`
	PayPeriodSettings PayPeriodSettings `firestore:"payPeriodSettings" json:"pay_period_settings"`
}
