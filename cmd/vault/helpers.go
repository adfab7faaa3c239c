package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/thevaultapp/vault/internal/cli"
	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/config"
	"github.com/thevaultapp/vault/internal/dispatch"
	"github.com/thevaultapp/vault/internal/service"
	"github.com/thevaultapp/vault/internal/session"
	"github.com/thevaultapp/vault/internal/storage"
)

// initStore opens and migrates the SQLite store configured under
// database.path.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/vault/vault.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

func configuredUserID() string {
	if id := viper.GetString("user.id"); id != "" {
		return id
	}
	return "local"
}

// withSession opens the store and session, runs fn, and tears both down.
// Every command goes through here so persistence setup lives in one place.
func withSession(ctx context.Context, fn func(context.Context, *dispatch.Dispatcher, *session.Session) error) error {
	store, err := initStore(ctx)
	if err != nil {
		return common.NewUserError("Failed to open the vault database", err)
	}
	defer func() { _ = store.Close() }()

	sess, err := session.Open(ctx, configuredUserID(), store)
	if err != nil {
		return common.NewUserError("Failed to open the ledger session", err)
	}
	defer func() { _ = sess.Close() }()

	return fn(ctx, dispatch.New(sess), sess)
}

// printResult renders a dispatcher result and reminds the user when the last
// background save failed.
func printResult(sess *session.Session, res dispatch.Result) {
	if res.Success {
		fmt.Println(cli.FormatSuccess(res.Message))
	} else {
		fmt.Println(cli.FormatError(res.Message))
	}
	if err := sess.LastSaveError(); err != nil {
		fmt.Println(cli.FormatWarning("Changes may not be persisted: " + common.UserMessage(err)))
	}
}

// newTable returns a tabwriter bound to stdout for list output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}
