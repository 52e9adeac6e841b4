package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nestegghq/nestegg/internal/config"
	"github.com/nestegghq/nestegg/internal/db"
	"github.com/nestegghq/nestegg/internal/repository"
	"github.com/nestegghq/nestegg/internal/service"
)

type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	AuthService           *service.AuthService
	UserService           *service.UserService
	GoalService           *service.GoalService
	SavingsAccountService *service.SavingsAccountService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	savingsAccountRepository := repository.NewSavingsAccountRepository(database)

	// Services
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	goalService := service.NewGoalService(goalRepository, savingsAccountRepository)
	savingsAccountService := service.NewSavingsAccountService(savingsAccountRepository)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		AuthService:           authService,
		UserService:           userService,
		GoalService:           goalService,
		SavingsAccountService: savingsAccountService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
