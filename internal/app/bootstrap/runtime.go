package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cacheadapter "github.com/skillstream/lms-backend/internal/adapters/cache"
	eventadapter "github.com/skillstream/lms-backend/internal/adapters/events"
	httpadapter "github.com/skillstream/lms-backend/internal/adapters/http"
	mailadapter "github.com/skillstream/lms-backend/internal/adapters/mail"
	mediaadapter "github.com/skillstream/lms-backend/internal/adapters/media"
	paymentadapter "github.com/skillstream/lms-backend/internal/adapters/payment"
	"github.com/skillstream/lms-backend/internal/adapters/postgres"
	"github.com/skillstream/lms-backend/internal/adapters/security"
	"github.com/skillstream/lms-backend/internal/application"
	"github.com/skillstream/lms-backend/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	service    *application.Service
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	outbox     *eventadapter.OutboxWorker
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping lms backend",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"environment", cfg.Environment,
	)

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := pool.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	repos := postgres.NewRepositories(pool)

	tokens, err := security.NewJWTIssuer(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.ActivationTokenSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	if err != nil {
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("init jwt issuer: %w", err)
	}

	var media ports.MediaUploader
	if cfg.CloudinaryURL != "" {
		media, err = mediaadapter.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			_ = sqlDB.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("init cloudinary: %w", err)
		}
	} else {
		logger.Warn("no media provider configured, storing local references only")
		media = mediaadapter.NoopUploader{}
	}

	var payments ports.PaymentVerifier
	if cfg.PaymentBaseURL != "" {
		payments = paymentadapter.NewHTTPVerifier(cfg.PaymentBaseURL, cfg.PaymentAPIKey)
	} else {
		logger.Warn("no payment gateway configured, accepting all payments")
		payments = paymentadapter.NoopVerifier{}
	}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			DefaultRole:           cfg.DefaultRole,
			CatalogCacheTTL:       cfg.CatalogCacheTTL,
			NotificationRetention: cfg.NotificationRetention,
		},
		Users:         repos.Users,
		Courses:       repos.Courses,
		Reviews:       repos.Reviews,
		Questions:     repos.Questions,
		Orders:        repos.Orders,
		Notifications: repos.Notifications,
		Layouts:       repos.Layouts,
		Outbox:        repos.Outbox,
		Sessions:      cacheadapter.NewRedisSessionStore(redisClient),
		CatalogCache:  cacheadapter.NewRedisCatalogCache(redisClient),
		Hasher:        security.NewBcryptHasher(cfg.BcryptCost),
		Tokens:        tokens,
		Mailer: mailadapter.NewSMTPMailer(mailadapter.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Email:    cfg.SMTPEmail,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		Media:    media,
		Payments: payments,
	})

	handler := httpadapter.NewHandler(svc, httpadapter.CookiePolicy{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("listen gRPC: %w", err)
	}

	var publisher ports.EventPublisher
	var publisherClose func() error
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub, err := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, nil)
		if err != nil {
			_ = sqlDB.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("init kafka publisher: %w", err)
		}
		publisher = kafkaPub
		publisherClose = kafkaPub.Close
	} else {
		logger.Warn("no kafka brokers configured, events will be logged only")
		publisher = eventadapter.NewLoggingPublisher(logger)
	}

	outbox := eventadapter.NewOutboxWorker(
		logger,
		repos.Outbox,
		publisher,
		cfg.OutboxPollInterval,
		cfg.OutboxBatchSize,
		cfg.OutboxMaxRetries,
	)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		httpServer: httpServer,
		grpcServer: grpcServer,
		grpcLis:    lis,
		outbox:     outbox,
		cleanupFn: func(ctx context.Context) {
			if publisherClose != nil {
				_ = publisherClose()
			}
			_ = redisClient.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		r.logger.Info("grpc health server started", "addr", r.grpcLis.Addr().String())
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}

// RunWorker drives the outbox publisher loop and the periodic notification
// retention sweep until shutdown.
func (r *Runtime) RunWorker(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go r.runCleanupLoop(ctx)

	r.logger.Info("outbox worker started")
	err := r.outbox.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r.cleanupFn(shutdownCtx)
	return nil
}

func (r *Runtime) runCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		if _, err := r.service.CleanupReadNotifications(ctx); err != nil {
			r.logger.ErrorContext(ctx, "notification cleanup failed",
				"operation", "cleanup_notifications",
				"outcome", "failure",
				"error", err,
			)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
