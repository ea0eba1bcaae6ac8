// internal/cli/account.go
package cli

import (
	"context"
	"flag"

	app "moneta/internal"
	"moneta/internal/domain"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type accountCreateCmd struct {
	app *app.Application

	name       string
	secondName string
	email      string
	password   string
	currency   string
	role       string
	balance    string
}

func (*accountCreateCmd) Name() string     { return "account-create" }
func (*accountCreateCmd) Synopsis() string { return "create a new account" }
func (*accountCreateCmd) Usage() string {
	return `moneta account-create -name <name> -second <second name> -email <email> -password <password> [-currency UAH] [-role ACCOUNT] [-balance 0]

  Creates an account and prints it. Currency and role are fixed at creation.
`
}

func (c *accountCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name.")
	f.StringVar(&c.secondName, "second", "", "Second name.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.password, "password", "", "Password (stored as an argon2id hash).")
	f.StringVar(&c.currency, "currency", "UAH", "Currency code: UAH, USD or EUR.")
	f.StringVar(&c.role, "role", "ACCOUNT", "Role: ACCOUNT or ADMIN.")
	f.StringVar(&c.balance, "balance", "0", "Starting balance.")
}

func (c *accountCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.password == "" {
		return failUsage("-name and -password are required")
	}
	currency, err := domain.ParseCurrency(c.currency)
	if err != nil {
		return fail(err)
	}
	role, err := domain.ParseRole(c.role)
	if err != nil {
		return fail(err)
	}
	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		return fail(err)
	}
	account, err := c.app.AccountService.Insert(c.name, c.secondName, c.email, c.password, currency, role, balance)
	if err != nil {
		return fail(err)
	}
	return render(account)
}

type accountUpdateCmd struct {
	app *app.Application

	id    string
	field string
	value string
}

func (*accountUpdateCmd) Name() string     { return "account-update" }
func (*accountUpdateCmd) Synopsis() string { return "update a mutable account field" }
func (*accountUpdateCmd) Usage() string {
	return `moneta account-update -id <id> -field <name|secondName|email> -value <value>
`
}

func (c *accountUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
	f.StringVar(&c.field, "field", "", "Field to update: name, secondName or email.")
	f.StringVar(&c.value, "value", "", "New value.")
}

func (c *accountUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.field == "" {
		return failUsage("-id and -field are required")
	}
	field, err := domain.ParseAccountField(c.field)
	if err != nil {
		return fail(err)
	}
	account, err := c.app.AccountService.UpdateField(c.id, c.value, field)
	if err != nil {
		return fail(err)
	}
	if account == nil {
		return failUsage("account not found: " + c.id)
	}
	return render(account)
}

type accountBalanceCmd struct {
	app *app.Application

	id string
}

func (*accountBalanceCmd) Name() string     { return "account-balance" }
func (*accountBalanceCmd) Synopsis() string { return "print the stored balance of an account" }
func (*accountBalanceCmd) Usage() string {
	return `moneta account-balance -id <id>
`
}

func (c *accountBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
}

func (c *accountBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	balance, err := c.app.AccountService.GetBalance(c.id)
	if err != nil {
		return fail(err)
	}
	if balance == nil {
		return failUsage("account not found: " + c.id)
	}
	return render(balance)
}

type accountListCmd struct {
	app *app.Application
}

func (*accountListCmd) Name() string     { return "account-list" }
func (*accountListCmd) Synopsis() string { return "list all accounts" }
func (*accountListCmd) Usage() string {
	return `moneta account-list
`
}
func (*accountListCmd) SetFlags(*flag.FlagSet) {}

func (c *accountListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := c.app.AccountService.GetAll()
	if err != nil {
		return fail(err)
	}
	return render(accounts)
}

type accountDeleteCmd struct {
	app *app.Application

	id string
}

func (*accountDeleteCmd) Name() string     { return "account-delete" }
func (*accountDeleteCmd) Synopsis() string { return "delete an account" }
func (*accountDeleteCmd) Usage() string {
	return `moneta account-delete -id <id>
`
}

func (c *accountDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
}

func (c *accountDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return failUsage("-id is required")
	}
	if err := c.app.AccountService.Delete(c.id); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
