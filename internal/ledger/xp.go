package ledger

import (
	"log/slog"

	"github.com/thevaultapp/vault/internal/model"
)

// awardXP accrues gamification XP and handles level-ups. The threshold check
// is a single conditional, not a loop: an award larger than one threshold
// still advances at most one level, leaving xp >= nextLevelXp until the next
// award. Known limitation, kept on purpose.
func (l *Ledger) awardXP(amount int64, reason string) {
	stats := &l.snap.Stats
	stats.XP += amount
	if stats.XP >= stats.NextLevelXP {
		stats.XP -= stats.NextLevelXP
		stats.Level++
		stats.NextLevelXP = int64(float64(stats.NextLevelXP) * 1.5)
		stats.Title = model.TitleForLevel(stats.Level)
		slog.Info("Level up", "level", stats.Level, "title", stats.Title)
	}
	slog.Debug("XP awarded", "amount", amount, "reason", reason, "xp", stats.XP, "level", stats.Level)
}

// UpdateProfile applies a field-wise profile patch. The profile carries no
// ledger invariants; empty fields are left untouched.
func (l *Ledger) UpdateProfile(patch ProfilePatch) {
	profile := &l.snap.Profile
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.FinancialGoal != nil {
		profile.FinancialGoal = *patch.FinancialGoal
	}
	if patch.RiskTolerance != nil {
		profile.RiskTolerance = *patch.RiskTolerance
	}
	if patch.Occupation != nil {
		profile.Occupation = *patch.Occupation
	}
	if patch.VoiceName != nil {
		profile.VoiceName = *patch.VoiceName
	}
	if patch.MonthlyIncomeCents != nil {
		profile.MonthlyIncomeCents = *patch.MonthlyIncomeCents
	}
}

// ProfilePatch is a field-wise profile edit. Nil fields are left untouched.
type ProfilePatch struct {
	Name               *string
	FinancialGoal      *string
	RiskTolerance      *model.RiskTolerance
	Occupation         *string
	VoiceName          *string
	MonthlyIncomeCents *int64
}
