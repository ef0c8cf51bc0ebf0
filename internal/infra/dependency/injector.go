// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/paisatrack/backend/config"
	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/application/usecase/account"
	"github.com/paisatrack/backend/internal/application/usecase/auth"
	"github.com/paisatrack/backend/internal/application/usecase/budget"
	"github.com/paisatrack/backend/internal/application/usecase/goal"
	"github.com/paisatrack/backend/internal/application/usecase/transaction"
	"github.com/paisatrack/backend/internal/infra/server/router"
	"github.com/paisatrack/backend/internal/integration/adapters"
	"github.com/paisatrack/backend/internal/integration/email"
	"github.com/paisatrack/backend/internal/integration/email/templates"
	"github.com/paisatrack/backend/internal/integration/entrypoint/controller"
	"github.com/paisatrack/backend/internal/integration/entrypoint/middleware"
	"github.com/paisatrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Email pipeline
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		// Without an API key, sends are recorded but not delivered.
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Shared engines
	reconciler := account.NewBalanceReconciler(accountRepo, transactionRepo)
	progressEngine := budget.NewProgressEngine(transactionRepo, accountRepo)
	budgetRefresh := budget.NewRefreshOnTransactionUseCase(budgetRepo, userRepo, progressEngine, emailService)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo, transactionRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)
	overrideBalanceUseCase := account.NewOverrideBalanceUseCase(accountRepo, reconciler)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, reconciler, budgetRefresh)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, reconciler, budgetRefresh)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reconciler, budgetRefresh)
	recentTransactionsUseCase := transaction.NewRecentTransactionsUseCase(transactionRepo)
	transactionSummaryUseCase := transaction.NewTransactionSummaryUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, progressEngine)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, progressEngine)
	getBudgetProgressUseCase := budget.NewGetBudgetProgressUseCase(budgetRepo, progressEngine)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, progressEngine)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	budgetAnalyticsUseCase := budget.NewBudgetAnalyticsUseCase(budgetRepo, progressEngine)
	suggestBudgetsUseCase := budget.NewSuggestBudgetsUseCase(transactionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeGoalUseCase := goal.NewContributeGoalUseCase(goalRepo)
	completeGoalUseCase := goal.NewCompleteGoalUseCase(goalRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		getProfileUseCase,
		updateProfileUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		getAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		overrideBalanceUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		recentTransactionsUseCase,
		transactionSummaryUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		getBudgetProgressUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		budgetAnalyticsUseCase,
		suggestBudgetsUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeGoalUseCase,
		completeGoalUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		transactionController,
		budgetController,
		goalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
