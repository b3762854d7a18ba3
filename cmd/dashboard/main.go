package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"oddsdesk/internal/client/scoring"
	"oddsdesk/internal/config"
	cronrunner "oddsdesk/internal/cron"
	"oddsdesk/internal/db"
	"oddsdesk/internal/filter"
	"oddsdesk/internal/handler"
	"oddsdesk/internal/insight"
	"oddsdesk/internal/logger"
	gormrepository "oddsdesk/internal/repository/gorm"
	"oddsdesk/internal/service"

	_ "oddsdesk/docs"
)

func main() {
	cfgPath := os.Getenv("OD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("OD_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	store := gormrepository.New(dbConn.Gorm)
	scoringHTTP := &http.Client{Timeout: cfg.Scoring.Timeout}
	scoringClient := scoring.NewClient(scoringHTTP, cfg.Scoring.BaseURL)

	refreshSvc := &service.RefreshService{
		Client: scoringClient,
		Repo:   store,
		Logger: logger,
	}
	refreshQuery := scoring.Query{
		Days:         cfg.Refresh.Days,
		SportKey:     cfg.Refresh.SportKey,
		Limit:        cfg.Refresh.Limit,
		IncludeStale: true,
	}
	consensusCache := service.NewConsensusCache(cfg.Consensus.FlashDuration)
	detailFetcher := &service.DetailBatchFetcher{Client: scoringClient, Logger: logger}
	filterStore := &filter.Store{
		RDB:    rdb,
		Prefix: cfg.Redis.KeyPrefix,
		TTL:    cfg.Redis.FilterTTL,
		Logger: logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	oppHandler := &handler.OpportunityHandler{Repo: store}
	oppHandler.Register(engine)
	qualityHandler := &handler.QualityHandler{Repo: store}
	qualityHandler.Register(engine)
	summaryHandler := &handler.SummaryHandler{
		Repo:       store,
		Thresholds: summaryThresholds(cfg.Summary),
	}
	summaryHandler.Register(engine)
	filterHandler := &handler.FilterHandler{Store: filterStore}
	filterHandler.Register(engine)
	consensusHandler := &handler.ConsensusHandler{Cache: consensusCache, Details: detailFetcher}
	consensusHandler.Register(engine)
	refreshHandler := &handler.RefreshHandler{Repo: store, Service: refreshSvc, Query: refreshQuery}
	refreshHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		_, err = cronRunner.Add(cfg.Cron.Refresh, func(ctx context.Context) {
			if _, err := refreshSvc.Refresh(ctx, refreshQuery); err != nil {
				logger.Warn("cron refresh failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register refresh failed", zap.Error(err))
		}
		_, err = cronRunner.Add(cfg.Cron.Cleanup, func(ctx context.Context) {
			n, err := store.DeleteGenerationsBefore(ctx, cfg.Cron.KeepWindows)
			if err != nil {
				logger.Warn("generation cleanup failed", zap.Error(err))
				return
			}
			if n > 0 {
				logger.Info("deleted old generations", zap.Int64("count", n))
			}
		})
		if err != nil {
			logger.Warn("cron register cleanup failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	if cfg.Consensus.Enabled {
		stream := scoring.NewConsensusStream(scoring.ConsensusStreamOptions{
			URL:        cfg.Consensus.URL,
			BackoffMin: cfg.Consensus.BackoffMin,
			BackoffMax: cfg.Consensus.BackoffMax,
			Logger:     logger,
		})
		go func() {
			if err := stream.Run(ctx, consensusCache.Apply); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("consensus stream stopped", zap.Error(err))
			}
		}()
	}

	// One refresh up front so the first page load has a generation to read.
	go func() {
		if _, err := refreshSvc.Refresh(ctx, refreshQuery); err != nil {
			logger.Warn("initial refresh failed (continuing)", zap.Error(err))
		}
	}()

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func summaryThresholds(cfg config.SummaryConfig) insight.SummaryThresholds {
	th := insight.DefaultSummaryThresholds()
	if cfg.HealthySentRatePct > 0 {
		th.HealthySentRatePct = cfg.HealthySentRatePct
	}
	if cfg.HealthyCLVPositivePct > 0 {
		th.HealthyCLVPositivePct = cfg.HealthyCLVPositivePct
	}
	if cfg.DegradedSentRatePct > 0 {
		th.DegradedSentRatePct = cfg.DegradedSentRatePct
	}
	if cfg.DegradedCLVPct > 0 {
		th.DegradedCLVPct = cfg.DegradedCLVPct
	}
	if cfg.DegradedMinCLVSamples > 0 {
		th.DegradedMinCLVSamples = cfg.DegradedMinCLVSamples
	}
	return th
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
