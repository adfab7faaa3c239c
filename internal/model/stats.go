package model

// UserStats tracks the gamification side-channel. The only invariant is
// 0 <= XP < NextLevelXP after an award is normalized.
type UserStats struct {
	Title       string `json:"title"`
	Level       int    `json:"level"`
	XP          int64  `json:"xp"`
	NextLevelXP int64  `json:"nextLevelXp"`
	StreakDays  int    `json:"streakDays"`
}

// XP awards per operation.
const (
	XPExpenseLogged       = 10
	XPIncomeRecorded      = 20
	XPAccountCreated      = 50
	XPDebtPayment         = 50
	XPSavingsContribution = 30
	XPFundsTransferred    = 10
)

// LevelTitles maps level (1-based) to a display title. Levels past the end
// of the table keep the last title.
var LevelTitles = []string{
	"Novice Saver",
	"Budget Apprentice",
	"Coin Keeper",
	"Vault Guardian",
	"Fiscal Strategist",
	"Wealth Architect",
	"Master of Coin",
	"Tycoon",
	"Titan",
	"Vault Legend",
}

// TitleForLevel returns the display title for a level.
func TitleForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(LevelTitles) {
		level = len(LevelTitles)
	}
	return LevelTitles[level-1]
}

// NewUserStats returns the stats a brand-new user starts with.
func NewUserStats() UserStats {
	return UserStats{
		Level:       1,
		XP:          0,
		NextLevelXP: 100,
		Title:       TitleForLevel(1),
	}
}
