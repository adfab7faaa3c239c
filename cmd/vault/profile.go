package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thevaultapp/vault/internal/cli"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
	"github.com/thevaultapp/vault/internal/session"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update the user profile",
	}
	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileSetCmd())
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(_ context.Context, _ *dispatch.Dispatcher, sess *session.Session) error {
				var profile model.UserProfile
				sess.View(func(l *ledger.Ledger) { profile = l.Profile() })

				w := newTable()
				fmt.Fprintf(w, "Name:\t%s\n", profile.Name)
				fmt.Fprintf(w, "Goal:\t%s\n", profile.FinancialGoal)
				fmt.Fprintf(w, "Risk tolerance:\t%s\n", profile.RiskTolerance)
				fmt.Fprintf(w, "Occupation:\t%s\n", profile.Occupation)
				fmt.Fprintf(w, "Currency:\t%s\n", profile.Currency)
				if profile.MonthlyIncomeCents > 0 {
					fmt.Fprintf(w, "Monthly income:\t%s\n", model.FormatCents(profile.MonthlyIncomeCents))
				}
				return w.Flush()
			})
		},
	}
}

func profileSetCmd() *cobra.Command {
	var (
		name          string
		goal          string
		risk          string
		occupation    string
		monthlyIncome float64
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{}
				if name != "" {
					params["name"] = name
				}
				if goal != "" {
					params["financialGoal"] = goal
				}
				if risk != "" {
					params["riskTolerance"] = risk
				}
				if occupation != "" {
					params["occupation"] = occupation
				}
				if cmd.Flags().Changed("monthly-income") {
					params["monthlyIncome"] = monthlyIncome
				}
				if len(params) == 0 {
					fmt.Println(cli.FormatInfo("Nothing to update."))
					return nil
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionUpdateProfile, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&goal, "goal", "", "primary financial goal")
	cmd.Flags().StringVar(&risk, "risk", "", "risk tolerance (low, medium, high)")
	cmd.Flags().StringVar(&occupation, "occupation", "", "occupation")
	cmd.Flags().Float64Var(&monthlyIncome, "monthly-income", 0, "monthly income in dollars")
	return cmd
}
