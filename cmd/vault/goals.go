package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thevaultapp/vault/internal/cli"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/model"
	"github.com/thevaultapp/vault/internal/session"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
	}
	cmd.AddCommand(goalsListCmd())
	cmd.AddCommand(goalsAddCmd())
	cmd.AddCommand(goalsUpdateCmd())
	cmd.AddCommand(goalsDeleteCmd())
	cmd.AddCommand(goalsContributeCmd())
	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, _ *session.Session) error {
				res := d.Execute(ctx, dispatch.ActionGetSavingsGoals, nil)
				goals, ok := res.Data.([]model.SavingsGoal)
				if !ok || len(goals) == 0 {
					fmt.Println(cli.FormatInfo("No savings goals yet."))
					return nil
				}

				w := newTable()
				fmt.Fprintln(w, "NAME\tSAVED\tTARGET\tBY")
				for _, goal := range goals {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", goal.Name,
						model.FormatCents(goal.CurrentCents),
						model.FormatCents(goal.GoalCents), goal.TargetDate)
				}
				return w.Flush()
			})
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var (
		targetDate string
		target     float64
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"name": args[0], "targetAmount": target}
				if targetDate != "" {
					params["targetDate"] = targetDate
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionAddSavingsGoal, params))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&target, "target", 0, "target amount in dollars")
	cmd.Flags().StringVar(&targetDate, "by", "", "target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func goalsUpdateCmd() *cobra.Command {
	var (
		newName   string
		newTarget float64
	)
	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a savings goal found by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"currentName": args[0]}
				if newName != "" {
					params["newName"] = newName
				}
				if cmd.Flags().Changed("target") {
					params["newTarget"] = newTarget
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionUpdateSavingsGoal, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&newName, "name", "", "new goal name")
	cmd.Flags().Float64Var(&newTarget, "target", 0, "new target amount in dollars")
	return cmd
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				printResult(sess, d.Execute(ctx, dispatch.ActionDeleteSavingsGoal, map[string]any{"name": args[0]}))
				return nil
			})
		},
	}
}

func goalsContributeCmd() *cobra.Command {
	var (
		from   string
		amount float64
	)
	cmd := &cobra.Command{
		Use:   "contribute NAME",
		Short: "Contribute money to a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{
					"goalName":        args[0],
					"fromAccountName": from,
					"amount":          amount,
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionContributeToSavings, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source account")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in dollars")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
