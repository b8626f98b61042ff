package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apirest "github.com/pokeduel/server/api/rest"
	"github.com/pokeduel/server/audit"
	"github.com/pokeduel/server/cache"
	"github.com/pokeduel/server/config"
	dbadapter "github.com/pokeduel/server/db"
	"github.com/pokeduel/server/game/battle"
	"github.com/pokeduel/server/game/collection"
	"github.com/pokeduel/server/game/dex"
	"github.com/pokeduel/server/game/stats"
	mw "github.com/pokeduel/server/middleware"
	"github.com/pokeduel/server/model"
	"github.com/pokeduel/server/scheduler"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	logger.Info("DB initialized")

	// ---- Audit ----
	auditSvc := audit.New(db, logger)
	defer auditSvc.Stop(context.Background())

	// ---- Cache ----
	c, err := cache.NewCache(cache.CacheConfig{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	logger.Info("Cache initialized")

	// ---- Battle engine ----
	provider := dex.NewProvider()
	battleStore := model.NewBattleStore(db)
	collStore := model.NewCollectionStore(db)
	ledger := model.NewLedger(db)

	collSvc := collection.NewService(collStore, provider, c, logger)
	rewards := battle.NewRewardProcessor(ledger, collection.NewInvalidatingStore(collStore, collSvc), battle.RewardConfig{
		BaseCoins: cfg.Battle.RewardBaseCoins,
		BaseExp:   cfg.Battle.RewardBaseExp,
	}, logger)
	orc := battle.NewOrchestrator(battleStore, provider, collStore, rewards, nil, logger)
	statsSvc := stats.New(c, logger)

	// ---- Scheduler: stale battle reaper ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	sched.AddTicker("battle_reaper", cfg.Battle.ReaperInterval, func() {
		n, err := battleStore.CancelStale(context.Background(), cfg.Battle.ReaperWindow)
		if err != nil {
			logger.Error("battle reaper failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("reaped inactive battles", zap.Int("count", n))
		}
	})

	// ---- Gin HTTP Server ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// ---- REST API routes ----
	authH := apirest.NewAuthHandler(db, c, cfg.Security)
	battleH := apirest.NewBattleHandler(orc, collSvc, auditSvc, statsSvc)
	statsH := apirest.NewStatsHandler(statsSvc)

	api := r.Group("/api")
	{
		authG := api.Group("/auth")
		authG.POST("/login", authH.Login)
		authG.POST("/logout", mw.Auth(cfg.Security, c), authH.Logout)

		battlesG := api.Group("/battles")
		battlesG.Use(mw.Auth(cfg.Security, c))
		battlesG.POST("", battleH.Create)
		battlesG.GET("/:id", battleH.Get)
		battlesG.POST("/:id/respond", battleH.Respond)
		battlesG.GET("/:id/selectable", battleH.Selectable)
		battlesG.POST("/:id/team", battleH.SelectTeam)
		battlesG.POST("/:id/move", battleH.SubmitMove)
		battlesG.POST("/:id/switch", battleH.Switch)
		battlesG.POST("/:id/forfeit", battleH.Forfeit)

		statsG := api.Group("/stats")
		statsG.Use(mw.Auth(cfg.Security, c))
		statsG.GET("/leaderboard", statsH.Leaderboard)
		statsG.GET("/recent", statsH.Recent)
		statsG.GET("/record", statsH.Record)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
