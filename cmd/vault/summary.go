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

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show net worth and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, d *dispatch.Dispatcher, sess *session.Session) error {
				res := d.Execute(ctx, dispatch.ActionGetFinancialSummary, nil)
				summary, ok := res.Data.(ledger.Summary)
				if !ok {
					fmt.Println(cli.FormatError(res.Message))
					return nil
				}

				var stats model.UserStats
				sess.View(func(l *ledger.Ledger) { stats = l.Stats() })

				content := fmt.Sprintf(
					"Net worth:    %s\nAssets:       %s\nLiabilities:  %s\nDebt owed:    %s\n\nLevel %d %s (%d/%d XP)",
					model.FormatCents(summary.NetWorthCents),
					model.FormatCents(summary.AssetsCents),
					model.FormatCents(summary.LiabilitiesCents),
					model.FormatCents(summary.DebtRemainingCents),
					stats.Level, stats.Title, stats.XP, stats.NextLevelXP,
				)
				fmt.Println(cli.RenderBox(cli.VaultIcon+" The Vault", content))
				return nil
			})
		},
	}
}
