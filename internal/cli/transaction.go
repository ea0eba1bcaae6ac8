// internal/cli/transaction.go
package cli

import (
	"context"
	"flag"

	app "moneta/internal"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type transferCmd struct {
	app *app.Application

	from     string
	to       string
	category string
	amount   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move an amount between two accounts" }
func (*transferCmd) Usage() string {
	return `moneta transfer -from <sender id> -to <receiver id> -category <category id> -amount <amount>

  Debits the sender, credits the receiver and appends one transaction record.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Sender account id.")
	f.StringVar(&c.to, "to", "", "Receiver account id.")
	f.StringVar(&c.category, "category", "", "Category id.")
	f.StringVar(&c.amount, "amount", "", "Positive amount to move.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		return failUsage("-from, -to and -amount are required")
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(err)
	}
	tx, err := c.app.TransactionService.Transfer(c.from, c.to, c.category, amount)
	if err != nil {
		return fail(err)
	}
	return render(tx)
}

type txPeriodCmd struct {
	app *app.Application

	account string
	start   string
	end     string
}

func (*txPeriodCmd) Name() string     { return "tx-period" }
func (*txPeriodCmd) Synopsis() string { return "list an account's transactions within a period" }
func (*txPeriodCmd) Usage() string {
	return `moneta tx-period -account <id> -start <date> -end <date>

  Matches transactions where the account is sender or receiver and the
  creation instant falls within [start, end], both ends inclusive. A bare end
  date covers its whole day.
`
}

func (c *txPeriodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id.")
	f.StringVar(&c.start, "start", "", "Period start (YYYY-MM-DD or RFC3339).")
	f.StringVar(&c.end, "end", "", "Period end, inclusive.")
}

func (c *txPeriodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.start == "" || c.end == "" {
		return failUsage("-account, -start and -end are required")
	}
	start, err := parseDate(c.start)
	if err != nil {
		return fail(err)
	}
	end, err := parseDate(c.end)
	if err != nil {
		return fail(err)
	}
	transactions, err := c.app.TransactionService.ByPeriod(c.account, start, endOfDay(end))
	if err != nil {
		return fail(err)
	}
	return render(transactions)
}

type txStatsCmd struct {
	app *app.Application

	account string
	start   string
	end     string
}

func (*txStatsCmd) Name() string     { return "tx-stats" }
func (*txStatsCmd) Synopsis() string { return "per-category income/expense totals for a period" }
func (*txStatsCmd) Usage() string {
	return `moneta tx-stats -account <id> -start <date> -end <date>
`
}

func (c *txStatsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id.")
	f.StringVar(&c.start, "start", "", "Period start (YYYY-MM-DD or RFC3339).")
	f.StringVar(&c.end, "end", "", "Period end, inclusive.")
}

func (c *txStatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.start == "" || c.end == "" {
		return failUsage("-account, -start and -end are required")
	}
	start, err := parseDate(c.start)
	if err != nil {
		return fail(err)
	}
	end, err := parseDate(c.end)
	if err != nil {
		return fail(err)
	}
	stats, err := c.app.TransactionService.StatsByCategories(c.account, start, endOfDay(end))
	if err != nil {
		return fail(err)
	}
	return render(stats)
}

type txByCategoryCmd struct {
	app *app.Application

	category string
}

func (*txByCategoryCmd) Name() string     { return "tx-by-category" }
func (*txByCategoryCmd) Synopsis() string { return "list transactions referencing a category" }
func (*txByCategoryCmd) Usage() string {
	return `moneta tx-by-category -category <id>
`
}

func (c *txByCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category id.")
}

func (c *txByCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := c.app.TransactionService.ByCategory(c.category)
	if err != nil {
		return fail(err)
	}
	return render(transactions)
}

type txByAmountCmd struct {
	app *app.Application

	amount string
}

func (*txByAmountCmd) Name() string     { return "tx-by-amount" }
func (*txByAmountCmd) Synopsis() string { return "list transactions with an exact amount" }
func (*txByAmountCmd) Usage() string {
	return `moneta tx-by-amount -amount <amount>
`
}

func (c *txByAmountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Exact amount to match.")
}

func (c *txByAmountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		return failUsage("-amount is required")
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(err)
	}
	transactions, err := c.app.TransactionService.ByAmount(amount)
	if err != nil {
		return fail(err)
	}
	return render(transactions)
}

type txByDateCmd struct {
	app *app.Application

	date string
}

func (*txByDateCmd) Name() string     { return "tx-by-date" }
func (*txByDateCmd) Synopsis() string { return "list transactions created on a calendar day" }
func (*txByDateCmd) Usage() string {
	return `moneta tx-by-date -date <YYYY-MM-DD>

  Matches the calendar day in local time, ignoring time of day.
`
}

func (c *txByDateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Calendar day to match.")
}

func (c *txByDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		return failUsage("-date is required")
	}
	day, err := parseDate(c.date)
	if err != nil {
		return fail(err)
	}
	transactions, err := c.app.TransactionService.ByDate(day)
	if err != nil {
		return fail(err)
	}
	return render(transactions)
}

type txListCmd struct {
	app *app.Application
}

func (*txListCmd) Name() string     { return "tx-list" }
func (*txListCmd) Synopsis() string { return "list the whole transaction ledger" }
func (*txListCmd) Usage() string {
	return `moneta tx-list
`
}
func (*txListCmd) SetFlags(*flag.FlagSet) {}

func (c *txListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := c.app.TransactionService.GetAll()
	if err != nil {
		return fail(err)
	}
	return render(transactions)
}

type txDeleteCmd struct {
	app *app.Application

	id string
}

func (*txDeleteCmd) Name() string     { return "tx-delete" }
func (*txDeleteCmd) Synopsis() string { return "delete a transaction record" }
func (*txDeleteCmd) Usage() string {
	return `moneta tx-delete -id <id>

  Deletion rewrites the collection without the record; stored transactions are
  otherwise immutable.
`
}

func (c *txDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id.")
}

func (c *txDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return failUsage("-id is required")
	}
	if err := c.app.TransactionService.Delete(c.id); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
