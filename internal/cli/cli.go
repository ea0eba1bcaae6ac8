// internal/cli/cli.go

// Package cli wires the ledger services to a subcommand interface. Commands
// parse primitives, call one service operation, and render the result or the
// error; all domain decisions stay in the services.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	app "moneta/internal"

	"github.com/google/subcommands"
)

// Register registers all ledger subcommands on the commander.
func Register(c *subcommands.Commander, application *app.Application) {
	c.Register(&accountCreateCmd{app: application}, "accounts")
	c.Register(&accountUpdateCmd{app: application}, "accounts")
	c.Register(&accountBalanceCmd{app: application}, "accounts")
	c.Register(&accountListCmd{app: application}, "accounts")
	c.Register(&accountDeleteCmd{app: application}, "accounts")

	c.Register(&categoryAddCmd{app: application}, "categories")
	c.Register(&categoryRenameCmd{app: application}, "categories")
	c.Register(&categoryDescribeCmd{app: application}, "categories")
	c.Register(&categoryListCmd{app: application}, "categories")
	c.Register(&categoryDeleteCmd{app: application}, "categories")

	c.Register(&transferCmd{app: application}, "transactions")
	c.Register(&txPeriodCmd{app: application}, "transactions")
	c.Register(&txStatsCmd{app: application}, "transactions")
	c.Register(&txByCategoryCmd{app: application}, "transactions")
	c.Register(&txByAmountCmd{app: application}, "transactions")
	c.Register(&txByDateCmd{app: application}, "transactions")
	c.Register(&txListCmd{app: application}, "transactions")
	c.Register(&txDeleteCmd{app: application}, "transactions")
}

// render prints any value as indented JSON on stdout.
func render(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

func failUsage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}

// dateFormats accepted by the date flags, tried in order.
var dateFormats = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want one of %v", s, dateFormats)
}

// endOfDay pins a bare date to the last millisecond of that day, so a period
// given as two dates covers the whole last day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
