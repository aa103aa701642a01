package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/config"
	"github.com/Guyuepp/blog-comments/internal/publisher"
	"github.com/Guyuepp/blog-comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/blog-comments/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/blog-comments/internal/repository/redis"
	"github.com/Guyuepp/blog-comments/internal/rest"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/rest/request"
	"github.com/Guyuepp/blog-comments/internal/usecase/comment"
	"github.com/Guyuepp/blog-comments/internal/workers"
)

const dbRetryInterval = 2 * time.Second

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file loaded, reading configuration from the environment")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	cfg.Log.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	db := openDatabase(&cfg.Database)
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.Database.MigrationsEnabled {
		if err := mysqlRepo.Migrate(db); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	articleDBRepo := mysqlRepo.NewArticleDBRepository(db)
	articleCache := myRedisCache.NewArticleCache(client)
	articleRepo := repository.NewArticleRepository(articleDBRepo, articleCache)
	commentRepo := repository.NewCommentRepository(mysqlRepo.NewCommentRepository(db), userRepo, articleRepo)

	// Prepare bloom filter
	var bloomRepo domain.BloomRepository
	if cfg.Bloom.Enabled {
		bloom := myRedisCache.NewRedisBloomRepo(client, cfg.Bloom.BitSize)
		refresher := workers.NewBloomRefreshWorker(articleDBRepo, bloom, cfg.Bloom.RefreshInterval)
		if err := refresher.Refresh(ctx); err != nil {
			logrus.Fatalf("failed to init bloom filter: %v", err)
		}
		go refresher.Start(ctx)
		bloomRepo = bloom
	}

	// Start event worker
	var eventPublisher domain.CommentEventPublisher = publisher.LogPublisher{Logger: logrus.StandardLogger()}
	if cfg.Events.NATSURL != "" {
		nc, err := publisher.Connect(cfg.Events.NATSURL)
		if err != nil {
			logrus.Fatalf("failed to connect to nats: %v", err)
		}
		defer nc.Close()
		eventPublisher = publisher.NewNATSPublisher(nc, cfg.Events.SubjectPrefix)
	}
	eventWorker := workers.NewCommentEventWorker(eventPublisher, cfg.Events.FlushInterval)
	// the worker outlives the signal so events from in-flight requests are still flushed
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})
	go func() {
		eventWorker.Start(workerCtx)
		close(workerDone)
	}()

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, articleRepo, bloomRepo, eventWorker, comment.ParseRootTotal(cfg.RootTotal))
	commentHandler := rest.NewCommentHandler(commentSvc)
	healthHandler := rest.NewHealthHandler(map[string]rest.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"cache": func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	})

	// prepare gin
	if err := request.RegisterValidators(); err != nil {
		logrus.Fatalf("failed to register validators: %v", err)
	}
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))
	route.Use(middleware.Identify(cfg.Auth.JWTSecret))

	// Register routes
	route.GET("/healthz", healthHandler.Health)
	commentHandler.Register(route)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	stopWorker()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logrus.Warn("event worker did not finish in time")
	}

	logrus.Info("Server exiting")
}

// openDatabase retries until MySQL accepts connections or the retry budget is spent.
func openDatabase(cfg *config.DatabaseConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	attempts := max(cfg.MaxRetry, 1)
	for i := range attempts {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, attempts, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if dbErr = sqlDB.Ping(); dbErr == nil {
					return db
				}
				_ = sqlDB.Close()
			}
			err = dbErr
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, attempts, err)
		}
		time.Sleep(dbRetryInterval)
	}
	logrus.Fatalf("could not connect to database after retries: %v", err)
	return nil
}
