package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/analytics"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/config"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/logger"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/storage"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/handler"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/middleware"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/XrayFinanceDEV/xbrlbudget-sub001/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			XBRL Budget Dashboard API
//	@version		1.0
//	@description	Orchestration layer for the financial reporting dashboard: cached upstream views, scenario selection, report assembly and PDF export

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting XBRL Budget Dashboard",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Initialize OTEL log export and rebuild the logger on a teed core so
	// every record reaches both the local writer and the collector
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize OTEL log export", zap.Error(err))
	}
	defer func() {
		if err := loggerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down OTEL log export", zap.Error(err))
		}
	}()
	if loggerProvider.IsEnabled() {
		bridged, err := telemetry.CreateBridgedLoggerFromConfig(&telemetry.BaseLoggerConfig{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			Output:     cfg.Log.Output,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		}, loggerProvider, cfg.Telemetry.ServiceName)
		if err != nil {
			log.Warn("Log bridge unavailable, keeping local-only logging", zap.Error(err))
		} else {
			log = bridged
		}
	}

	// Initialize distributed tracing
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.TracingFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize metrics export
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Initialize continuous profiling
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to link span profiles", zap.Error(err))
		}
	}

	// Dashboard-level instruments shared by the cache, the upstream client
	// and the orchestration services
	metrics, err := telemetry.NewDashboardMetrics(telemetry.DashboardMetricsConfig{
		Meter:  meterProvider.Meter("dashboard"),
		Logger: log,
	})
	if err != nil {
		log.Fatal("Failed to create dashboard metrics", zap.Error(err))
	}

	// Credential relay: the host application pushes bearer tokens, every
	// upstream call reads the latest one
	relay := auth.NewRelay(auth.WithRelayLogger(log))

	// Query cache shared by all dashboard services
	store := cache.NewStore(cache.WithLogger(log), cache.WithMetrics(metrics))
	metrics.SetCacheProvider(store)
	metrics.StartPeriodicCollection(ctx, time.Minute)
	defer metrics.Stop()

	// Upstream analytical service client
	client, err := analytics.NewClient(analytics.Config{
		BaseURL:       cfg.Analytics.BaseURL,
		Timeout:       cfg.Analytics.Timeout,
		ExportTimeout: cfg.Analytics.ExportTimeout,
		BearerWait:    cfg.Analytics.BearerWait,
	}, relay, analytics.WithClientLogger(log), analytics.WithClientMetrics(metrics))
	if err != nil {
		log.Fatal("Failed to create analytics client", zap.Error(err))
	}
	log.Info("Analytics upstream configured", zap.String("base_url", cfg.Analytics.BaseURL))

	// Export artifact storage
	sink, err := storage.NewSink(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize artifact storage", zap.Error(err))
	}
	log.Info("Artifact storage configured", zap.String("backend", cfg.Storage.Backend))

	// Initialize application services
	selection := dashboard.NewSelection()
	detailService := dashboard.NewDetailService(client, store, cfg.Dashboard.DetailConcurrency, log, metrics)
	companyService := dashboard.NewCompanyService(client, store, detailService, selection, log)
	scenarioService := dashboard.NewScenarioService(client, store, detailService, log, metrics)
	analysisService := dashboard.NewAnalysisService(client, store)
	commentaryService := dashboard.NewCommentaryService(client, store, selection, log, metrics)
	reportService := dashboard.NewReportService(companyService, analysisService, commentaryService)
	exportService := dashboard.NewExportService(client, companyService, sink, cfg.Storage.Backend, log, metrics)
	revalidator := dashboard.NewRevalidator(store, log)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(cfg.App.Name, cfg.App.Env)
	companyHandler := handler.NewCompanyHandler(companyService)
	overviewHandler := handler.NewOverviewHandler(companyService, detailService, revalidator)
	scenarioHandler := handler.NewScenarioHandler(scenarioService)
	selectionHandler := handler.NewSelectionHandler(selection, companyService, scenarioService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	commentaryHandler := handler.NewCommentaryHandler(commentaryService)
	reportHandler := handler.NewReportHandler(reportService)
	exportHandler := handler.NewExportHandler(exportService)
	revalidateHandler := handler.NewRevalidateHandler(revalidator, detailService)
	credentialHandler := handler.NewCredentialHandler(relay)
	streamHandler := handler.NewCredentialStreamHandler(relay, handler.WithSSELogger(log))

	// Commentary generation is billed per call by the AI engine, so the
	// route carries its own limit on top of the global one. The key is
	// constant: one shared engine, not one budget per client.
	generateLimiter := middleware.NewRateLimiter(6, time.Minute)
	commentaryHandler.SetGenerateGuard(middleware.RateLimitByKey(generateLimiter, func(*gin.Context) string {
		return "commentary-generate"
	}))

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing - Open a span per request
	// 4. TracingAttributeInjector - Tag the span with the request ID
	// 5. SpanErrorMarker - Flag 5xx responses on the span
	// 6. Logger - Log requests
	// 7. Security - Add security headers
	// 8. CORS - Handle cross-origin requests
	// 9. BodyLimit - Limit request body size
	// 10. HTTPMetrics - Record request metrics
	// 11. Profiling - Attach profiling labels
	// 12. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Request metrics and profiling labels
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		ServiceName:   cfg.Telemetry.ServiceName,
		Enabled:       cfg.Telemetry.Enabled,
	}))
	profilingConfig := middleware.DefaultProfilingConfig()
	profilingConfig.Enabled = profiler.IsEnabled()
	engine.Use(middleware.ProfilingWithConfig(profilingConfig))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(relay))

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(companyHandler).
		Register(overviewHandler).
		Register(scenarioHandler).
		Register(selectionHandler).
		Register(analysisHandler).
		Register(commentaryHandler).
		Register(reportHandler).
		Register(exportHandler).
		Register(revalidateHandler).
		Register(credentialHandler).
		Register(streamHandler)
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Start forwarding relay refresh requests to event stream subscribers
	if err := streamHandler.Start(); err != nil {
		log.Fatal("Failed to start credential event stream", zap.Error(err))
	}
	defer streamHandler.Stop()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints.
// A missing credential is reported but not unhealthy: the host application
// pushes one after boot, and the service must stay reachable until then.
func healthHandler(relay *auth.Relay) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := "absent"
		if _, ok := relay.Token(); ok {
			credential = "present"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"time":       time.Now().Format(time.RFC3339),
			"credential": credential,
		})
	}
}
