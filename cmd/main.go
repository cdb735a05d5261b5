package main

import (
	"context"
	"flag"
	"net/http"

	"PokerLens/config"
	"PokerLens/internal/game/engine"
	"PokerLens/internal/game/manager"
	"PokerLens/internal/middleware"
	"PokerLens/internal/report"
	"PokerLens/internal/storage"
	"PokerLens/internal/utils"
	"PokerLens/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "path to config yaml, empty for defaults and env only")
	flag.Parse()

	if err := config.Load(*cfgPath); err != nil {
		utils.Log.Fatal("config", "err", err)
	}
	utils.Init(config.C.Log.Level)

	//-------------------------------------------------------
	// 1. 报告缓存：配置了 Redis 就用 Redis，否则用内存
	//-------------------------------------------------------
	var repo report.Repo
	if addr := config.C.Redis.Addr; addr != "" {
		rdb, err := storage.NewRedis(context.Background(), addr, config.C.Redis.Password, config.C.Redis.DB)
		if err != nil {
			utils.Log.Fatal("redis init failed", "err", err)
		}
		defer rdb.Close()
		repo = report.NewRedisRepo(rdb)
		utils.Log.Info("report cache", "backend", "redis", "addr", addr)
	} else {
		repo = report.NewMemoryRepo()
		utils.Log.Info("report cache", "backend", "memory")
	}
	svc := report.NewService(repo, config.C.Report.Workers, config.C.Report.CacheTTLSeconds, utils.Log)

	//-------------------------------------------------------
	// 2. 初始化 Gin + CORS
	//-------------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(utils.Log))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. WebSocket Hub：推送发牌事件
	//-------------------------------------------------------
	hub := websocket.NewHub(utils.Log)
	go hub.Run()
	defer hub.Close()

	//-------------------------------------------------------
	// 4. 报告路由 + 单挑发牌
	//-------------------------------------------------------
	report.NewHandler(svc).Register(r)
	mgr := manager.NewManager(engine.Listeners{manager.LogListener(utils.Log), hub})
	manager.NewHandler(mgr, hub).Register(r)

	utils.Log.Info("server running", "port", config.C.Server.Port, "workers", config.C.Report.Workers)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Log.Fatal("server stopped", "err", err)
	}
}
