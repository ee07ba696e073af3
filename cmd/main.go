package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"

	"github.com/sbilibin2017/yetkinlik/internal/docs"
	"github.com/sbilibin2017/yetkinlik/internal/facades"
	"github.com/sbilibin2017/yetkinlik/internal/handlers"
	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/middlewares"
	"github.com/sbilibin2017/yetkinlik/internal/migrations"
	"github.com/sbilibin2017/yetkinlik/internal/repositories"
	"github.com/sbilibin2017/yetkinlik/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost, appPort   string
	logLevel, logFile  string
	pgHost             string
	pgPort             int
	pgUser, pgPassword string
	pgDB               string
	pgMaxOpenConns     int
	pgMaxIdleConns     int
	pgAutoMigrate      bool
	redisEnabled       bool
	redisHost          string
	redisPort          int
	redisDB            int
	redisPassword      string
	redisPoolSize      int
	redisMinIdleConns  int
	redisExpSecond     int
	kafkaBrokers       []string
	kafkaTopic         string
	grpcHost, grpcPort string
	statusInterval     time.Duration
	cvListLimit        int
}

// @title yetkinlik API
// @version 1.0.0
// @description Stores candidate CVs and lists them
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, gRPC and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logFile = getEnv("APP_LOG_FILE", "")
	if cfg.cvListLimit, err = getInt("CV_LIST_LIMIT", "100"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.pgAutoMigrate, err = getBool("POSTGRES_AUTO_MIGRATE", "true"); err != nil {
		return
	}

	// Redis config
	if cfg.redisEnabled, err = getBool("REDIS_ENABLED", "true"); err != nil {
		return
	}
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, broker)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "cv.created")

	// gRPC config
	cfg.grpcHost = getEnv("GRPC_HOST", "localhost")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")
	interval, err := getInt("STATUS_INTERVAL_SECOND", "10")
	if err != nil {
		return
	}
	cfg.statusInterval = time.Duration(interval) * time.Second

	return
}

// newRouter wires handlers and middleware.
func newRouter(cvService *services.CVService, statusService *services.StatusService, swaggerURL string) http.Handler {
	pageHandler := handlers.NewPageHandler(cvService, statusService)
	submitHandler := handlers.NewSubmitFormHandler(cvService, cvService, statusService)
	listHandler := handlers.NewListCVsHandler(cvService)
	createHandler := handlers.NewCreateCVHandler(cvService)
	statusHandler := handlers.NewStatusHandler(statusService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Page
	r.Get("/", pageHandler)
	r.Post("/", submitHandler)

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cvs", listHandler)
		r.Post("/cvs", createHandler)
		r.Get("/status", statusHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// kafkaBatchTimeout bounds how long a synchronous publish waits to fill a batch.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter creates the cv.created event writer.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka writer, gRPC health server and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.logFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	if cfg.pgAutoMigrate {
		if err := migrations.Up(dsn); err != nil {
			return fmt.Errorf("PostgreSQL migration failed: %w", err)
		}
	}

	// The page reports "Not Connected" instead of refusing to start
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL open failed: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Warnw("PostgreSQL ping failed", "error", err)
	}

	// Connect to Redis
	var (
		cvCache     services.CVCache
		cachePinger services.Pinger
	)
	if cfg.redisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("Redis connection error", "error", err)
		}
		cvCache = repositories.NewCVCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)
		cachePinger = repositories.NewCacheHealthRepository(rdb)
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := newKafkaWriter(cfg.kafkaBrokers, cfg.kafkaTopic)
		defer kw.Close()
		kafkaWriter = kw
		log.Infow("Kafka writer configured", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize repositories
	cvReadRepo := repositories.NewCVReadRepository(db)
	cvWriteRepo := repositories.NewCVWriteRepository(db, repositories.GetTxFromContext)
	txManager := repositories.NewTxManager(db)
	healthRepo := repositories.NewHealthRepository(db)

	// Initialize services
	cvService := services.NewCVService(cvReadRepo, cvWriteRepo, txManager, cvCache, kafkaWriter, cfg.cvListLimit)
	statusService := services.NewStatusService(healthRepo, cachePinger)

	// Setup router
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)
	docs.SwaggerInfo.Version = buildVersion
	r := newRouter(cvService, statusService,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC health server
	grpcAddr := fmt.Sprintf("%s:%s", cfg.grpcHost, cfg.grpcPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s failed: %w", grpcAddr, err)
	}
	grpcServer := grpc.NewServer()
	healthFacade := facades.NewHealthGRPCFacade()
	healthFacade.Register(grpcServer)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go healthFacade.Watch(ctxShutdown, statusService, cfg.statusInterval)

	go func() {
		log.Infof("gRPC health server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}
