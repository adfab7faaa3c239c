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

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage financial accounts",
	}
	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsAddCmd())
	cmd.AddCommand(accountsEditCmd())
	cmd.AddCommand(accountsDeleteCmd())
	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, _ *session.Session) error {
				res := d.Execute(ctx, dispatch.ActionGetAccounts, nil)
				accounts, ok := res.Data.([]model.Account)
				if !ok || len(accounts) == 0 {
					fmt.Println(cli.FormatInfo("No accounts yet. Add one with 'vault accounts add'."))
					return nil
				}

				w := newTable()
				fmt.Fprintln(w, "NAME\tTYPE\tBALANCE\tNOTES")
				for _, a := range accounts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Type, model.FormatCents(a.BalanceCents), a.Notes)
				}
				return w.Flush()
			})
		},
	}
}

func accountsAddCmd() *cobra.Command {
	var (
		accountType string
		notes       string
		balance     float64
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{
					"name":    args[0],
					"type":    accountType,
					"balance": balance,
				}
				if notes != "" {
					params["notes"] = notes
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionAddAccount, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "BANK", "account type (BANK, CASH, CREDIT, INVESTMENT, OTHER)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance in dollars")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func accountsEditCmd() *cobra.Command {
	var (
		newName    string
		newNotes   string
		newBalance float64
	)
	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Edit an account found by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{"currentName": args[0]}
				if newName != "" {
					params["newName"] = newName
				}
				if newNotes != "" {
					params["newNotes"] = newNotes
				}
				if cmd.Flags().Changed("balance") {
					params["newBalance"] = newBalance
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionEditAccount, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&newName, "name", "", "new account name")
	cmd.Flags().StringVar(&newNotes, "notes", "", "new notes")
	cmd.Flags().Float64Var(&newBalance, "balance", 0, "override the balance in dollars (correction, not reconciled)")
	return cmd
}

func accountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an account found by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				printResult(sess, d.Execute(ctx, dispatch.ActionDeleteAccount, map[string]any{"name": args[0]}))
				return nil
			})
		},
	}
}
