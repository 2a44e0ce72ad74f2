package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dapuribu-be/internal/cart"
	"dapuribu-be/internal/config"
	"dapuribu-be/internal/db"
	"dapuribu-be/internal/logger"
	"dapuribu-be/internal/menu"
	"dapuribu-be/internal/middleware"
	"dapuribu-be/internal/order"
	"dapuribu-be/internal/rdx"
	"dapuribu-be/internal/routes"
	"dapuribu-be/internal/theme"
	"dapuribu-be/internal/user"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	initRedisFunc   = rdx.InitRedis
	startServerFunc = startServer
)

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func setupRouter(cfg *config.Config, userH *user.Handler, menuH *menu.Handler,
	cartH *cart.Handler, themeH *theme.Handler, orderH *order.Handler) *httprouter.Router {

	router := httprouter.New()

	routes.AddHealthRoutes(router)
	routes.AddStaticRoutes(router, cfg.UploadDir)
	routes.AddAuthRoutes(router, userH)
	routes.AddMenuRoutes(router, menuH)
	routes.AddCartRoutes(router, cartH)
	routes.AddThemeRoutes(router, themeH)
	routes.AddOrderRoutes(router, orderH)
	routes.AddMetricsRoutes(router)

	return router
}

// newServer wires repositories, services and handlers into the final
// middleware chain. A nil Redis client falls back to in-memory cart and
// theme state, which is enough for tests and local runs.
func newServer(cfg *config.Config, database *sql.DB, rdb *redis.Client) http.Handler {
	var cartPersister cart.Persister = cart.NewMemoryPersister()
	var themePersister theme.Persister = theme.NewMemoryPersister()
	if rdb != nil {
		cartPersister = cart.NewRedisPersister(rdb)
		themePersister = theme.NewRedisPersister(rdb)
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)
	userH := user.NewHandler(userSvc)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)
	menuH := menu.NewHandler(menuSvc, cfg.UploadDir)

	cartH := cart.NewHandler(cartPersister, menuSvc)
	themeH := theme.NewHandler(themePersister)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartPersister, cfg.WhatsAppPhone)
	orderH := order.NewHandler(orderSvc)

	router := setupRouter(cfg, userH, menuH, cartH, themeH, orderH)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Device-ID", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(router)

	// Authenticate runs before the rate limiter so quotas attach to the
	// session identity rather than the IP.
	handler := middleware.Authenticate(middleware.RateLimitMiddleware(corsHandler))
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return securityHeaders(handler)
}

func startServer(addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	logger.L().Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	rdb := initRedisFunc(cfg)

	handler := newServer(cfg, database, rdb)
	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
