package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-users/internal/config"
	"github.com/sbilibin2017/gw-users/internal/docs"
	"github.com/sbilibin2017/gw-users/internal/handlers"
	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/middlewares"
	"github.com/sbilibin2017/gw-users/internal/repositories"
	"github.com/sbilibin2017/gw-users/internal/services"
	"github.com/sbilibin2017/gw-users/internal/views"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-users API
// @version 1.0.0
// @description CRUD service for user records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database pool, Kafka writer and HTTP server,
// and blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	userReadRepo := repositories.NewUserReadRepository(db, cfg.QueryTimeout)
	userWriteRepo := repositories.NewUserWriteRepository(db, cfg.QueryTimeout)
	userService := services.NewUserService(userReadRepo, userWriteRepo, kafkaWriter)

	docs.SwaggerInfo.Host = cfg.Addr()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(userService, renderer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds an asynchronous writer: WriteMessages only enqueues,
// and delivery failures are reported through Completion.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion:             logKafkaCompletion,
	}
}

func logKafkaCompletion(messages []kafka.Message, err error) {
	if err != nil {
		logger.Log.Errorw("failed to deliver user events", "count", len(messages), "error", err)
		return
	}
	logger.Log.Debugw("user events delivered", "count", len(messages))
}

// userService is everything the routes need from the service layer.
type userService interface {
	handlers.UserLister
	handlers.UserGetter
	handlers.UserCreator
	handlers.UserUpdater
	handlers.UserDeleter
}

// newRouter wires the routes of the users resource.
func newRouter(svc userService, renderer handlers.PageRenderer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewIndexHandler(svc, renderer))
	r.Handle("/public/*", views.Static())

	r.Route("/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(svc))
		r.Post("/", handlers.NewCreateUserHandler(svc))
		r.Get("/{id}", handlers.NewGetUserHandler(svc))
		r.Put("/{id}", handlers.NewUpdateUserHandler(svc))
		r.Delete("/{id}", handlers.NewDeleteUserHandler(svc))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
