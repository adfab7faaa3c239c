package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

// recentContextEntries caps how much history goes into the prompt.
const recentContextEntries = 15

// contextBlock renders the current ledger state as a prompt preamble so the
// model answers from live data instead of whatever it saw last turn.
func (a *Assistant) contextBlock(ctx context.Context) string {
	var b strings.Builder

	a.sess.View(func(l *ledger.Ledger) {
		profile := l.Profile()
		fmt.Fprintf(&b, "USER PROFILE:\nName: %s\nGoal: %s\nRisk: %s\n\n",
			profile.Name, profile.FinancialGoal, profile.RiskTolerance)

		b.WriteString("SYSTEM DATA DUMP (The Vault):\n[ACCOUNTS - LIQUID ASSETS]\n")
		accounts := l.Accounts()
		if len(accounts) == 0 {
			b.WriteString("No accounts found.\n")
		}
		for _, account := range accounts {
			fmt.Fprintf(&b, "- %s (%s): %s\n", account.Name, account.Type, model.FormatCents(account.BalanceCents))
		}

		b.WriteString("\n[ACTIVE DEBTS]\n")
		debts := l.Debts()
		if len(debts) == 0 {
			b.WriteString("No active debts.\n")
		}
		for _, debt := range debts {
			fmt.Fprintf(&b, "- %s: %s remaining\n", debt.Name, model.FormatCents(debt.RemainingBalanceCents))
		}

		b.WriteString("\n[SAVINGS GOALS]\n")
		goals := l.Goals()
		if len(goals) == 0 {
			b.WriteString("No active goals.\n")
		}
		for _, goal := range goals {
			fmt.Fprintf(&b, "- %s: %s of %s\n", goal.Name,
				model.FormatCents(goal.CurrentCents), model.FormatCents(goal.GoalCents))
		}

		b.WriteString("\n[RECENT ACTIVITY]\n")
		records := l.RecentTransactions(recentContextEntries)
		if len(records) == 0 {
			b.WriteString("No recent transactions.\n")
		}
		for _, r := range records {
			verb := "Spent"
			if r.Kind == model.KindIncome {
				verb = "Earned"
			}
			fmt.Fprintf(&b, "- %s: %s %s on %s\n", r.Date, verb, model.FormatCents(r.AmountCents), r.Notes)
		}
	})

	if facts, err := a.sess.MemoryFacts(ctx); err != nil {
		common.LogError(err, "Failed to load memory facts", nil)
	} else if len(facts) > 0 {
		b.WriteString("\n[LONG-TERM MEMORY]\n")
		for _, fact := range facts {
			fmt.Fprintf(&b, "- %s\n", fact)
		}
	}

	b.WriteString("\n[RECENT USER/AI ACTIONS]\n")
	b.WriteString(a.sess.Actions().Summary(recentContextEntries))

	return b.String()
}
