package model

// RiskTolerance is the user's self-reported appetite for financial risk.
type RiskTolerance string

const (
	// RiskLow prefers capital preservation.
	RiskLow RiskTolerance = "low"
	// RiskMedium balances growth and safety.
	RiskMedium RiskTolerance = "medium"
	// RiskHigh prefers growth over safety.
	RiskHigh RiskTolerance = "high"
)

// UserProfile is descriptive only; it carries no ledger invariants.
type UserProfile struct {
	Name               string        `json:"name"`
	Currency           string        `json:"currency"`
	FinancialGoal      string        `json:"financialGoal"`
	RiskTolerance      RiskTolerance `json:"riskTolerance"`
	Occupation         string        `json:"occupation,omitempty"`
	VoiceName          string        `json:"voiceName,omitempty"`
	MonthlyIncomeCents int64         `json:"monthlyIncomeCents,omitempty"`
}

// DefaultProfile returns the profile a brand-new user starts with.
func DefaultProfile(name string) UserProfile {
	return UserProfile{
		Name:          name,
		Currency:      "USD",
		FinancialGoal: "Financial Freedom",
		RiskTolerance: RiskMedium,
	}
}
