package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/authenticator"
	"github.com/estatehub/buyer-intake/config"
	"github.com/estatehub/buyer-intake/controllers"
	"github.com/estatehub/buyer-intake/database"
	"github.com/estatehub/buyer-intake/logger"
	appmiddleware "github.com/estatehub/buyer-intake/middleware"
	"github.com/estatehub/buyer-intake/ratelimit"
	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/services"
)

// Per-endpoint rate limits, matching the intake form's abuse budgets.
var (
	createBuyerLimit = ratelimit.Rule{Window: 15 * time.Minute, MaxRequests: 20}
	importCSVLimit   = ratelimit.Rule{Window: time.Hour, MaxRequests: 5}
	exportCSVLimit   = ratelimit.Rule{Window: time.Hour, MaxRequests: 10}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Initialize(cfg.Database.Path)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, zapLogger)

	auth, err := authenticator.NewOpenIDProvider(context.Background(), authenticator.OpenIDConfig{
		IssuerURL:    cfg.OIDC.IssuerURL,
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		CallbackURL:  cfg.OIDC.CallbackURL,
	})
	if err != nil {
		zapLogger.Fatal("failed to initialize OIDC provider", zap.Error(err))
	}

	ctrl := controllers.NewControllers(srvs, repos, auth, zapLogger)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore())

	r, err := setupRouter(cfg, ctrl, repos, limiter, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to setup router", zap.Error(err))
	}

	zapLogger.Info("buyer intake starting",
		zap.String("port", cfg.HTTP.Port),
		zap.String("database", cfg.Database.Path),
	)
	if err := http.ListenAndServe(":"+cfg.HTTP.Port, r); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// setupRouter configures all routes.
func setupRouter(
	cfg *config.Config,
	ctrl *controllers.Controllers,
	repos *repositories.Repositories,
	limiter *ratelimit.Limiter,
	zapLogger *zap.Logger,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(appmiddleware.RequestLogger(zapLogger))

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  cfg.Session.CookieName,
		Secure:      cfg.HTTP.UseHTTPS,
		Gclifetime:  int64(cfg.Session.Lifetime),
		Maxlifetime: int64(cfg.Session.Lifetime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "buyer-intake"}`)
	})

	// PROTECTED ROUTES
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth(repos.Users))

		r.Get("/api/me", ctrl.Auth.Me)

		r.Route("/api/buyers", func(r chi.Router) {
			r.Get("/", ctrl.Buyer.List)
			r.With(appmiddleware.RateLimit(limiter, "create_buyer", createBuyerLimit)).
				Post("/", ctrl.Buyer.Create)

			r.With(appmiddleware.RateLimit(limiter, "export_csv", exportCSVLimit)).
				Get("/export", ctrl.Buyer.Export)
			r.With(appmiddleware.RateLimit(limiter, "import_csv", importCSVLimit)).
				Post("/import", ctrl.Buyer.Import)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ctrl.Buyer.Get)
				r.Put("/", ctrl.Buyer.Update)
				r.Delete("/", ctrl.Buyer.Delete)
				r.Get("/history", ctrl.Buyer.History)
			})
		})

		r.Post("/api/admin/set-admin", ctrl.Admin.SetAdmin)
	})

	return r, nil
}
