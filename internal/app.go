// internal/app.go
package app

import (
	"fmt"
	"log/slog"

	"moneta/internal/config"
	"moneta/internal/repository"
	"moneta/internal/repository/jsonfile"
	"moneta/internal/service"
	"moneta/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Repositories
	AccountRepository     repository.AccountRepository
	CategoryRepository    repository.CategoryRepository
	TransactionRepository repository.TransactionRepository

	// Services
	AccountService     service.AccountService
	CategoryService    service.CategoryService
	TransactionService service.TransactionService
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	app.Logger = util.GetLogger()

	app.AccountRepository = jsonfile.NewAccountStore(cfg.DataDir)
	app.CategoryRepository = jsonfile.NewCategoryStore(cfg.DataDir)
	app.TransactionRepository = jsonfile.NewTransactionStore(cfg.DataDir)

	for _, ready := range []func() error{
		app.AccountRepository.EnsureReady,
		app.CategoryRepository.EnsureReady,
		app.TransactionRepository.EnsureReady,
	} {
		if err := ready(); err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	app.AccountService = service.NewAccountService(app.AccountRepository, app.Logger)
	app.CategoryService = service.NewCategoryService(app.CategoryRepository, app.Logger)
	app.TransactionService = service.NewTransactionService(app.TransactionRepository, app.AccountService, app.Logger)

	app.Logger.Debug("application initialized", "data_dir", cfg.DataDir)
	return nil
}
