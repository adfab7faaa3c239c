package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/session"
)

func transferCmd() *cobra.Command {
	var (
		from   string
		to     string
		amount float64
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between two accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				params := map[string]any{
					"fromAccountName": from,
					"toAccountName":   to,
					"amount":          amount,
				}
				printResult(sess, d.Execute(ctx, dispatch.ActionTransferFunds, params))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source account")
	cmd.Flags().StringVar(&to, "to", "", "destination account")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in dollars")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
