// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kumpul/backend/config"
	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/application/usecase/auth"
	"github.com/kumpul/backend/internal/application/usecase/dashboard"
	"github.com/kumpul/backend/internal/application/usecase/hangout"
	"github.com/kumpul/backend/internal/application/usecase/savings"
	"github.com/kumpul/backend/internal/application/usecase/transaction"
	"github.com/kumpul/backend/internal/infra/server/router"
	"github.com/kumpul/backend/internal/integration/adapters"
	"github.com/kumpul/backend/internal/integration/cache"
	"github.com/kumpul/backend/internal/integration/email"
	"github.com/kumpul/backend/internal/integration/email/templates"
	"github.com/kumpul/backend/internal/integration/entrypoint/controller"
	"github.com/kumpul/backend/internal/integration/entrypoint/middleware"
	"github.com/kumpul/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The email sender is injected so tests can swap the Resend client for a mock.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, emailSender adapter.EmailSender) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	savingsRepo := persistence.NewSavingsRepository(db)
	hangoutRepo := persistence.NewHangoutRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	categorySuggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	joinCodeCache := cache.NewJoinCodeCache(redisClient)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create email template renderer: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	breakdownUseCase := transaction.NewGetCategoryBreakdownUseCase(transactionRepo)
	suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(categorySuggester)

	// Create savings use cases
	createGoalUseCase := savings.NewCreateGoalUseCase(savingsRepo)
	listGoalsUseCase := savings.NewListGoalsUseCase(savingsRepo)
	updateGoalUseCase := savings.NewUpdateGoalUseCase(savingsRepo)
	deleteGoalUseCase := savings.NewDeleteGoalUseCase(savingsRepo)
	depositUseCase := savings.NewDepositUseCase(savingsRepo)

	// Create hangout use cases
	createHangoutUseCase := hangout.NewCreateHangoutUseCase(hangoutRepo, userRepo, joinCodeCache)
	joinHangoutUseCase := hangout.NewJoinHangoutUseCase(hangoutRepo, userRepo, joinCodeCache)
	getHangoutUseCase := hangout.NewGetHangoutUseCase(hangoutRepo)
	listHangoutsUseCase := hangout.NewListHangoutsUseCase(hangoutRepo)
	updateHangoutUseCase := hangout.NewUpdateHangoutUseCase(hangoutRepo)
	deleteHangoutUseCase := hangout.NewDeleteHangoutUseCase(hangoutRepo, joinCodeCache)
	settleHangoutUseCase := hangout.NewSettleHangoutUseCase(hangoutRepo, userRepo, emailService, joinCodeCache)
	confirmParticipationUseCase := hangout.NewConfirmParticipationUseCase(hangoutRepo)
	markPaidUseCase := hangout.NewMarkPaidUseCase(hangoutRepo)
	addExpenseUseCase := hangout.NewAddExpenseUseCase(hangoutRepo)
	updateExpenseUseCase := hangout.NewUpdateExpenseUseCase(hangoutRepo)
	deleteExpenseUseCase := hangout.NewDeleteExpenseUseCase(hangoutRepo)
	inviteMemberUseCase := hangout.NewInviteMemberUseCase(hangoutRepo, userRepo, emailService)

	// Create dashboard use case
	overviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, savingsRepo, hangoutRepo)

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
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		breakdownUseCase,
		suggestCategoryUseCase,
	)

	savingsController := controller.NewSavingsController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		depositUseCase,
	)

	hangoutController := controller.NewHangoutController(
		createHangoutUseCase,
		joinHangoutUseCase,
		getHangoutUseCase,
		listHangoutsUseCase,
		updateHangoutUseCase,
		deleteHangoutUseCase,
		settleHangoutUseCase,
		confirmParticipationUseCase,
		markPaidUseCase,
		addExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		inviteMemberUseCase,
	)

	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		savingsController,
		hangoutController,
		dashboardController,
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
