// internal/cli/category.go
package cli

import (
	"context"
	"flag"

	app "moneta/internal"
	"moneta/internal/domain"

	"github.com/google/subcommands"
)

type categoryAddCmd struct {
	app *app.Application

	name        string
	description string
	kind        string
}

func (*categoryAddCmd) Name() string     { return "category-add" }
func (*categoryAddCmd) Synopsis() string { return "add a spending/income category" }
func (*categoryAddCmd) Usage() string {
	return `moneta category-add -name <name> [-desc <description>] [-kind income|outcome]

  Category names are unique, matched exactly (case-sensitive).
`
}

func (c *categoryAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name.")
	f.StringVar(&c.description, "desc", "", "Optional description; an empty string is kept as such.")
	f.StringVar(&c.kind, "kind", "", "Optional kind: income or outcome.")
}

func (c *categoryAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return failUsage("-name is required")
	}

	// A description given as "" is still a description; only an unset flag
	// means absent.
	var description *string
	var kind *domain.CategoryKind
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "desc" {
			description = &c.description
		}
	})
	if c.kind != "" {
		k, err := domain.ParseCategoryKind(c.kind)
		if err != nil {
			return fail(err)
		}
		kind = &k
	}

	category, err := c.app.CategoryService.Insert(c.name, description, kind)
	if err != nil {
		return fail(err)
	}
	return render(category)
}

type categoryRenameCmd struct {
	app *app.Application

	id   string
	name string
}

func (*categoryRenameCmd) Name() string     { return "category-rename" }
func (*categoryRenameCmd) Synopsis() string { return "rename a category" }
func (*categoryRenameCmd) Usage() string {
	return `moneta category-rename -id <id> -name <new name>
`
}

func (c *categoryRenameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
	f.StringVar(&c.name, "name", "", "New name.")
}

func (c *categoryRenameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		return failUsage("-id and -name are required")
	}
	if err := c.app.CategoryService.UpdateName(c.id, c.name); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type categoryDescribeCmd struct {
	app *app.Application

	id          string
	description string
}

func (*categoryDescribeCmd) Name() string     { return "category-describe" }
func (*categoryDescribeCmd) Synopsis() string { return "set a category description" }
func (*categoryDescribeCmd) Usage() string {
	return `moneta category-describe -id <id> -desc <description>
`
}

func (c *categoryDescribeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
	f.StringVar(&c.description, "desc", "", "New description.")
}

func (c *categoryDescribeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return failUsage("-id is required")
	}
	if err := c.app.CategoryService.UpdateDescription(c.id, c.description); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type categoryListCmd struct {
	app *app.Application
}

func (*categoryListCmd) Name() string     { return "category-list" }
func (*categoryListCmd) Synopsis() string { return "list all categories" }
func (*categoryListCmd) Usage() string {
	return `moneta category-list
`
}
func (*categoryListCmd) SetFlags(*flag.FlagSet) {}

func (c *categoryListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	categories, err := c.app.CategoryService.GetAll()
	if err != nil {
		return fail(err)
	}
	return render(categories)
}

type categoryDeleteCmd struct {
	app *app.Application

	id string
}

func (*categoryDeleteCmd) Name() string     { return "category-delete" }
func (*categoryDeleteCmd) Synopsis() string { return "delete a category" }
func (*categoryDeleteCmd) Usage() string {
	return `moneta category-delete -id <id>
`
}

func (c *categoryDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
}

func (c *categoryDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return failUsage("-id is required")
	}
	if err := c.app.CategoryService.Delete(c.id); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
