package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thevaultapp/vault/internal/cli"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
	"github.com/thevaultapp/vault/internal/session"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage expenses and income",
	}
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	return cmd
}

func txListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, _ *dispatch.Dispatcher, sess *session.Session) error {
				var records []ledger.TransactionRecord
				sess.View(func(l *ledger.Ledger) {
					records = l.RecentTransactions(limit)
				})
				if len(records) == 0 {
					fmt.Println(cli.FormatInfo("No transactions yet."))
					return nil
				}

				w := newTable()
				fmt.Fprintln(w, "DATE\tKIND\tAMOUNT\tDETAIL\tNOTES")
				for _, r := range records {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						r.Date, r.Kind, model.FormatCents(r.AmountCents), r.Detail, r.Notes)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "maximum records to show (0 for all)")
	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		kind     string
		account  string
		category string
		notes    string
		amount   float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense or income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{
					"type":   strings.ToUpper(kind),
					"amount": amount,
				}
				if account != "" {
					params["accountName"] = account
				}
				if category != "" {
					params["category"] = category
				}
				if notes != "" {
					params["notes"] = notes
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionAddTransaction, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "type", "EXPENSE", "transaction type (EXPENSE or INCOME)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in dollars")
	cmd.Flags().StringVar(&account, "account", "", "account name (defaults to the first account)")
	cmd.Flags().StringVar(&category, "category", "", "category name or income source")
	cmd.Flags().StringVar(&notes, "notes", "", "description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func txEditCmd() *cobra.Command {
	var (
		newNotes string
		newDate  string
		amount   float64
	)
	cmd := &cobra.Command{
		Use:   "edit SEARCH_TERM",
		Short: "Edit a transaction found by its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"searchTerm": args[0]}
				if cmd.Flags().Changed("amount") {
					params["newAmount"] = amount
				}
				if newNotes != "" {
					params["newNotes"] = newNotes
				}
				if newDate != "" {
					params["newDate"] = newDate
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionEditTransaction, params))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount in dollars")
	cmd.Flags().StringVar(&newNotes, "notes", "", "new description")
	cmd.Flags().StringVar(&newDate, "date", "", "new date (YYYY-MM-DD)")
	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SEARCH_TERM",
		Short: "Delete a transaction found by its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				printResult(sess, d.Execute(ctx, dispatch.ActionDeleteTransaction, map[string]any{"searchTerm": args[0]}))
				return nil
			})
		},
	}
}
