// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/application/usecase/auth"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/infra/server/router"
	"github.com/ledgerbook/backend/internal/integration/adapters"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerbook/backend/internal/integration/persistence"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
	"github.com/ledgerbook/backend/test/integration/mock"
)

const (
	testJWTSecret = "integration-test-secret"
	testTokenTTL  = time.Hour

	// High enough that no scenario trips the login limiter; the limiter
	// itself has dedicated middleware tests.
	testLoginRateLimit = 1000
)

// TestContext holds the per-scenario state: the running server, the last
// response and any values captured from earlier responses.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	vars           map[string]string
	token          string

	db *mock.Db
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires a fresh application server per scenario and
// registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: map[string]string{},
			vars:           map[string]string{},
			db:             mock.NewDb(&model.UserModel{}),
		}
		if err := tc.db.Reset(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		userRepo := persistence.NewUserRepository(tc.db.Conn)
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, testTokenTTL)

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

		listUseCase := ledger.NewListEntriesUseCase(userRepo)
		listMonthUseCase := ledger.NewListMonthEntriesUseCase(userRepo)
		getUseCase := ledger.NewGetEntryUseCase(userRepo)
		createUseCase := ledger.NewCreateEntryUseCase(userRepo)
		updateUseCase := ledger.NewUpdateEntryUseCase(userRepo)
		deleteUseCase := ledger.NewDeleteEntryUseCase(userRepo)

		healthController := controller.NewHealthController(func() bool { return true })
		authController := controller.NewAuthController(registerUseCase, loginUseCase)
		expenseController := controller.NewExpenseController(
			listUseCase, listMonthUseCase, getUseCase,
			createUseCase, updateUseCase, deleteUseCase,
		)
		revenueController := controller.NewRevenueController(
			listUseCase, listMonthUseCase, getUseCase,
			createUseCase, updateUseCase, deleteUseCase,
		)

		limiter := middleware.NewRateLimiterWithConfig(redisClient, testLoginRateLimit, time.Minute)
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		r := router.NewRouter(
			healthController,
			authController,
			expenseController,
			revenueController,
			limiter,
			authMiddleware,
		)
		tc.server = httptest.NewServer(r.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}
