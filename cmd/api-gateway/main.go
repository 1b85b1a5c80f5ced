package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/csmaviation/website-api/api/swagger"
	"github.com/csmaviation/website-api/internal/handler"
	"github.com/csmaviation/website-api/internal/middleware"
	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/repository"
	"github.com/csmaviation/website-api/internal/service"
	"github.com/csmaviation/website-api/pkg/cache"
	"github.com/csmaviation/website-api/pkg/config"
	"github.com/csmaviation/website-api/pkg/database"
	"github.com/csmaviation/website-api/pkg/export"
	"github.com/csmaviation/website-api/pkg/jobs"
	"github.com/csmaviation/website-api/pkg/logger"
	"github.com/csmaviation/website-api/pkg/mailer"
	corsmiddleware "github.com/csmaviation/website-api/pkg/middleware/cors"
	reqidmiddleware "github.com/csmaviation/website-api/pkg/middleware/requestid"
	"github.com/csmaviation/website-api/pkg/storage"
)

// @title CSM Aviation API
// @version 1.0.0
// @description Website backend: public forms, site content and emailed approval links.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	app, err := buildApp(ctx, cfg, db, redisClient, logr)
	if err != nil {
		logr.Fatal("failed to wire application", zap.Error(err))
	}
	app.queue.Start(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("http shutdown incomplete", zap.Error(err))
	}
	app.queue.Stop()
}

type application struct {
	router *gin.Engine
	queue  *jobs.Queue
}

func buildApp(ctx context.Context, cfg *config.Config, db *sqlx.DB, redisClient *redis.Client, logr *zap.Logger) (*application, error) {
	validate := validator.New()
	metrics := service.NewMetricsService()
	apiPrefix := "/" + strings.Trim(cfg.APIPrefix, "/")

	store, signer, err := newObjectStore(ctx, cfg, apiPrefix)
	if err != nil {
		return nil, err
	}

	submissionRepo := repository.NewSubmissionRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	contentRepo := repository.NewContentRepository(db)
	intakeRepo := repository.NewIntakeRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	var cacheRepo service.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	sender, err := mailer.New(cfg.Mail, logr)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	notifications, err := service.NewNotificationService(sender, service.NotificationConfig{
		AdminEmail:  cfg.Mail.AdminEmail,
		DocumentTTL: cfg.Storage.DocumentURLTTL,
	}, metrics, logr)
	if err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	queue := jobs.NewQueue("notifications", notifications.Dispatch, jobs.QueueConfig{
		Workers:    cfg.Notifications.Workers,
		BufferSize: cfg.Notifications.BufferSize,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		Logger:     logr,
		OnDrop:     notifications.OnDrop,
	})
	notifications.UseQueue(queue)
	notifications.UseDocumentLinker(store)

	tokens, err := service.NewActionTokenService(service.ActionTokenConfig{
		Secret:    cfg.Approval.TokenSecret,
		TTL:       cfg.Approval.TokenTTL,
		BaseURL:   cfg.PublicBaseURL,
		APIPrefix: apiPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("approval tokens: %w", err)
	}

	syncer := service.NewDocumentSyncService(store, auditRepo, export.NewPDFExporter(), cfg.Storage.DrivePrefix, logr)
	approvals := service.NewApprovalService(submissionRepo, tokens, syncer, notifications, auditRepo, logr,
		service.WithSyncTimeout(cfg.Approval.SyncTimeout),
		service.WithApprovalMetrics(metrics),
	)
	submissions := service.NewSubmissionService(submissionRepo, tokens, notifications, store, auditRepo, validate, logr, service.SubmissionConfig{
		UploadPrefix:     cfg.Storage.UploadPrefix,
		MaxDocumentBytes: cfg.Upload.MaxDocumentBytes,
		DocumentURLTTL:   cfg.Storage.DocumentURLTTL,
	})
	intake := service.NewIntakeService(intakeRepo, notifications, export.NewCSVExporter(), validate, logr)
	site := service.NewSiteService(configRepo, contentRepo, store, cacheSvc, auditRepo, validate, logr, service.SiteConfig{
		VideoPrefix:   cfg.Storage.VideoPrefix,
		VideoURLTTL:   cfg.Storage.VideoURLTTL,
		MaxVideoBytes: cfg.Upload.MaxVideoBytes,
	})
	auth := service.NewAuthService(userRepo, auditRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.SetHTMLTemplate(handler.ApprovalTemplates())
	r.MaxMultipartMemory = 32 << 20

	metricsHandler := handler.NewMetricsHandler(metrics, checks)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes := routeSet{
		approvals:   handler.NewApprovalHandler(approvals, logr),
		submissions: handler.NewSubmissionHandler(submissions, cfg.Upload.MaxDocumentBytes),
		intake:      handler.NewIntakeHandler(intake),
		site:        handler.NewSiteHandler(site, cfg.Upload.MaxVideoBytes),
		auth:        handler.NewAuthHandler(auth),
		metrics:     metricsHandler,
		jwt:         middleware.JWT(auth),
		loginLimit:  middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)),
	}
	if signer != nil {
		routes.files = handler.NewFilesHandler(signer, store)
	}
	routes.register(r.Group(apiPrefix))

	return &application{router: r, queue: queue}, nil
}

type routeSet struct {
	approvals   *handler.ApprovalHandler
	submissions *handler.SubmissionHandler
	intake      *handler.IntakeHandler
	site        *handler.SiteHandler
	auth        *handler.AuthHandler
	metrics     *handler.MetricsHandler
	files       *handler.FilesHandler
	jwt         gin.HandlerFunc
	loginLimit  gin.HandlerFunc
}

func (rs routeSet) register(api *gin.RouterGroup) {
	admins := middleware.RequireRoles(models.RoleAdmin)
	editors := middleware.RequireRoles(models.RoleAdmin, models.RoleEditor)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", rs.loginLimit, rs.auth.Login)
	authGroup.POST("/logout", rs.auth.Logout)
	authGroup.GET("/me", rs.jwt, rs.auth.Me)

	api.POST("/contact", rs.intake.Contact)
	api.POST("/trip-request", rs.intake.TripRequest)
	api.POST("/subscribe", rs.intake.Subscribe)
	api.POST("/survey", rs.intake.SubmitSurvey)
	api.GET("/survey", rs.jwt, editors, rs.intake.ListSurveys)
	api.GET("/survey/export", rs.jwt, editors, rs.intake.ExportSurveys)

	vendors := api.Group("/vendor-form")
	vendors.POST("/submit", rs.submissions.SubmitVendor)
	vendors.POST("/upload-document", rs.submissions.UploadDocument)
	rs.approvals.RegisterVendorRoutes(vendors)

	testimonials := api.Group("/testimonials")
	testimonials.GET("", rs.submissions.ListTestimonials)
	testimonials.POST("", rs.submissions.SubmitTestimonial)
	rs.approvals.RegisterTestimonialRoutes(testimonials)

	api.GET("/config", rs.site.Config)
	api.GET("/seo/:page", rs.site.SEO)
	api.GET("/fleet", rs.site.Fleet)
	api.PUT("/update-header", rs.jwt, editors, rs.site.UpdateHeader)
	api.POST("/update-home-video", rs.jwt, editors, rs.site.UpdateVideo)

	admin := api.Group("/admin", rs.jwt, admins)
	admin.GET("/submissions", rs.submissions.List)
	admin.GET("/metrics", rs.metrics.Snapshot)

	if rs.files != nil {
		api.GET("/files/:token", rs.files.Download)
	}
}

// newObjectStore prefers the S3 bucket and falls back to signed local files for development.
func newObjectStore(ctx context.Context, cfg *config.Config, apiPrefix string) (storage.ObjectStore, *storage.SignedURLSigner, error) {
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:   cfg.Storage.Bucket,
			Region:   cfg.Storage.Region,
			Endpoint: cfg.Storage.Endpoint,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("object storage: %w", err)
		}
		return s3Store, nil, nil
	}
	if cfg.Env == config.EnvProduction {
		return nil, nil, errors.New("S3_BUCKET_NAME is required in production")
	}
	signer := storage.NewSignedURLSigner(cfg.Approval.TokenSecret, cfg.Storage.DocumentURLTTL)
	local, err := storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.PublicBaseURL+apiPrefix+"/files", signer)
	if err != nil {
		return nil, nil, fmt.Errorf("local storage: %w", err)
	}
	return local, signer, nil
}
