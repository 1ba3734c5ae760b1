package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/account"
	"github.com/carson-networks/finance-server/internal/handlers/v1/admin"
	authhandler "github.com/carson-networks/finance-server/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/exchange"
	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/ratelimit"
	"github.com/carson-networks/finance-server/internal/rates"
	"github.com/carson-networks/finance-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Rest owns the HTTP surface: routing, middleware and the server lifecycle.
type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Tokens  *auth.TokenManager
	Rates   *rates.Client
	Limiter *ratelimit.Limiter
}

// Router assembles the middleware chain and registers every endpoint.
func (r *Rest) Router() http.Handler {
	huma.NewError = httperr.NewError

	router := chi.NewRouter()
	router.Use(identity.ClientIPMiddleware)
	router.Use(r.rateLimitMiddleware)
	router.Use(logging.RequestLogger(r.Logger))

	config := huma.DefaultConfig("Personal Finance Manager API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	humaAPI := humachi.New(router, config)
	humaAPI.UseMiddleware(r.authMiddleware(humaAPI))

	r.registerHandlers(humaAPI)
	return router
}

// authMiddleware resolves the bearer token for operations that declare a
// security requirement. Open operations pass through untouched.
func (r *Rest) authMiddleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Authentication required")
			return
		}

		userID, err := r.Tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next(identity.AttachUserID(ctx, userID))
	}
}

func (r *Rest) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.Limiter.Allow(identity.ClientIP(req.Context())) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (r *Rest) registerHandlers(api huma.API) {
	status.NewHandler().Register(api)

	authhandler.NewRegisterHandler(r.Service.Auth).Register(api)
	authhandler.NewLoginHandler(r.Service.Auth).Register(api)
	authhandler.NewMeHandler(r.Service.Auth).Register(api)

	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	account.NewUpdateAccountHandler(r.Service.Account).Register(api)
	account.NewDeleteAccountHandler(r.Service.Account).Register(api)

	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	category.NewGetCategoryHandler(r.Service.Category).Register(api)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(api)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewSummaryHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	budget.NewCreateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewGetBudgetHandler(r.Service.Budget).Register(api)
	budget.NewUpdateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewDeleteBudgetHandler(r.Service.Budget).Register(api)

	exchange.NewRatesHandler(r.Rates).Register(api)
	exchange.NewConvertHandler(r.Rates).Register(api)

	admin.NewDashboardHandler(r.Service.Admin).Register(api)
	admin.NewListUsersHandler(r.Service.Admin).Register(api)
	admin.NewGetUserHandler(r.Service.Admin).Register(api)
	admin.NewUpdateUserHandler(r.Service.Admin).Register(api)
	admin.NewDeleteUserHandler(r.Service.Admin).Register(api)
	admin.NewListLogsHandler(r.Service.Admin).Register(api)
	admin.NewSystemInfoHandler(r.Service.Admin).Register(api)
}

// Serve runs the HTTP server until the context is cancelled, then drains
// in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")

	select {
	case <-ctx.Done():
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
