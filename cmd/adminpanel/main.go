package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopkit/adminpanel/config"
	"github.com/shopkit/adminpanel/internal/auth"
	"github.com/shopkit/adminpanel/internal/broadcast"
	handler "github.com/shopkit/adminpanel/internal/handler/http"
	"github.com/shopkit/adminpanel/internal/middleware"
	"github.com/shopkit/adminpanel/internal/render"
	"github.com/shopkit/adminpanel/internal/repository"
	"github.com/shopkit/adminpanel/internal/repository/mongodb"
	"github.com/shopkit/adminpanel/internal/service"
	"github.com/shopkit/adminpanel/web"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context cancelled on shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize database
	db, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close(context.Background())

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	token := auth.NewAuthToken(cfg.SessionPassword)

	// template renderer
	renderer, err := render.New()
	if err != nil {
		logger.Fatal("Error parsing templates", zap.Error(err))
	}

	// broadcast hub for connected admin clients
	hub := broadcast.NewHub(logger)
	go hub.Run(ctx)

	// dependency injection
	// user
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)

	// order
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo)
	orderHandler := handler.NewOrderHandler(orderService, userService, renderer, hub)

	// static assets are embedded under web/static
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		logger.Fatal("Error reading static assets", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Route("/admin", func(r chi.Router) {
		r.Handle("/static/*", http.StripPrefix("/admin/static/", http.FileServer(http.FS(staticFS))))
		r.Get("/ws", hub.ServeWS())

		// routes that require a session
		r.Group(func(group chi.Router) {
			group.Use(middleware.Session(token, cfg.SessionCookieName))
			group.Get("/orders", orderHandler.ListOrders())
		})

		// internal API called by the order-placement flow and the orders page
		r.Post("/api/alert/new_order", orderHandler.NotifyNewOrder())
		r.Post("/api/complete_order", orderHandler.CompleteOrder())
	})

	router.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /\n"))
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Страница не найдена", http.StatusNotFound)
	})

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	// graceful shutdown: wait for signal, then drain the server
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
