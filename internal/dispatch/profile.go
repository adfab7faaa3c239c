package dispatch

import (
	"context"

	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

func (d *Dispatcher) updateProfile(params map[string]any) Result {
	var patch ledger.ProfilePatch
	if v := stringParam(params, "name"); v != "" {
		patch.Name = &v
	}
	if v := stringParam(params, "financialGoal"); v != "" {
		patch.FinancialGoal = &v
	}
	if v := stringParam(params, "riskTolerance"); v != "" {
		tolerance := model.RiskTolerance(v)
		patch.RiskTolerance = &tolerance
	}
	if v := stringParam(params, "occupation"); v != "" {
		patch.Occupation = &v
	}
	if v := stringParam(params, "voiceName"); v != "" {
		patch.VoiceName = &v
	}
	if v, ok := numberParam(params, "monthlyIncome"); ok {
		cents := model.Cents(v)
		patch.MonthlyIncomeCents = &cents
	}

	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		l.UpdateProfile(patch)
		return nil
	})
	if err != nil {
		return failure(failureMessage(err))
	}
	return success("Profile updated.")
}

func (d *Dispatcher) rememberFact(ctx context.Context, params map[string]any) Result {
	if err := d.sess.RememberFact(ctx, stringParam(params, "fact")); err != nil {
		return failure("Could not save that to memory.")
	}
	return success("I have saved that to my memory.")
}
