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

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track and pay down debts",
	}
	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsUpdateCmd())
	cmd.AddCommand(debtsDeleteCmd())
	cmd.AddCommand(debtsPayCmd())
	return cmd
}

func debtsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, _ *session.Session) error {
				res := d.Execute(ctx, dispatch.ActionGetDebts, nil)
				debts, ok := res.Data.([]model.Debt)
				if !ok || len(debts) == 0 {
					fmt.Println(cli.FormatInfo("No debts recorded."))
					return nil
				}

				w := newTable()
				fmt.Fprintln(w, "NAME\tREMAINING\tTOTAL\tDUE")
				for _, debt := range debts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", debt.Name,
						model.FormatCents(debt.RemainingBalanceCents),
						model.FormatCents(debt.TotalAmountCents), debt.DueDate)
				}
				return w.Flush()
			})
		},
	}
}

func debtsAddCmd() *cobra.Command {
	var (
		dueDate string
		total   float64
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Record a new debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"name": args[0], "totalAmount": total}
				if dueDate != "" {
					params["dueDate"] = dueDate
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionAddDebt, params))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "total amount owed in dollars")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

func debtsUpdateCmd() *cobra.Command {
	var (
		newName  string
		newTotal float64
	)
	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a debt found by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"debtName": args[0]}
				if newName != "" {
					params["newName"] = newName
				}
				if cmd.Flags().Changed("total") {
					params["newTotal"] = newTotal
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionUpdateDebt, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&newName, "name", "", "new debt name")
	cmd.Flags().Float64Var(&newTotal, "total", 0, "new total amount in dollars")
	return cmd
}

func debtsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a debt record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				printResult(sess, d.Execute(ctx, dispatch.ActionDeleteDebt, map[string]any{"name": args[0]}))
				return nil
			})
		},
	}
}

func debtsPayCmd() *cobra.Command {
	var (
		from   string
		amount float64
	)
	cmd := &cobra.Command{
		Use:   "pay NAME",
		Short: "Record a payment towards a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{
					"debtName":        args[0],
					"fromAccountName": from,
					"amount":          amount,
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionPayDebt, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "account to pay from")
	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount in dollars")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
