package app

import (
	"fmt"
	"net/http"

	"mywallet/internal/controller"
	"mywallet/internal/middlewareinternal"
	"mywallet/internal/repository"
	"mywallet/internal/service"
	"mywallet/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	cfg    *Config
	Router *chi.Mux
	db     *repository.Database
	Logger *zap.Logger
	Server *http.Server
}

func New(cfg *Config) (*App, error) {
	app := &App{
		cfg:    cfg,
		Router: chi.NewRouter(),
		Logger: zap.L(),
	}

	if err := app.initDB(); err != nil {
		return nil, err
	}
	if err := app.initRouter(); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) initDB() error {
	dbConfig := repository.DatabaseConfig{
		DSN:            a.cfg.DatabaseURI,
		MigrationsPath: a.cfg.MigrationsPath,
	}

	db, err := repository.NewDatabase(dbConfig)
	if err != nil {
		a.Logger.Error("Database initialization failed",
			zap.String("dsn", a.cfg.MaskDBPassword()),
			zap.Error(err))
		return fmt.Errorf("database initialization failed: %w", err)
	}

	a.db = db
	a.Logger.Info("Database initialized successfully",
		zap.String("migrations_path", a.cfg.MigrationsPath))

	return nil
}

func (a *App) initRouter() error {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(middleware.Logger)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.Compress(5))

	validator, err := validation.New(a.cfg.AllowedTLDs())
	if err != nil {
		return fmt.Errorf("validator initialization failed: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(a.db)
	sessionRepo := repository.NewSessionRepository(a.db)
	transactionRepo := repository.NewTransactionRepository(a.db)

	// Services
	authService := service.NewAuthService(userRepo, sessionRepo, a.cfg.BcryptCost, a.cfg.SessionTTL)
	transactionService := service.NewTransactionService(transactionRepo, sessionRepo, a.cfg.SessionTTL)

	// Controllers
	authController := controller.NewAuthController(authService, validator, a.Logger)
	transactionController := controller.NewTransactionController(transactionService, validator, a.Logger)

	// Public routes
	a.Router.Post("/register", authController.Register)
	a.Router.Post("/login", authController.Login)

	// Protected routes
	a.Router.Group(func(r chi.Router) {
		r.Use(middlewareinternal.BearerAuth())

		r.Post("/newincome", transactionController.NewIncome)
		r.Post("/newoutgoing", transactionController.NewOutgoing)
		r.Get("/homepage", transactionController.Homepage)
		r.Post("/logout", authController.Logout)
	})

	return nil
}
