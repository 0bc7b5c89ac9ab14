package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/toursproject/booking-backend/handlers"
	"github.com/toursproject/booking-backend/internal/accounts"
	"github.com/toursproject/booking-backend/internal/config"
	"github.com/toursproject/booking-backend/internal/database"
	"github.com/toursproject/booking-backend/internal/records"
	"github.com/toursproject/booking-backend/internal/sessions"
	"github.com/toursproject/booking-backend/pkg/logger"
	"github.com/toursproject/booking-backend/pkg/metrics"
	"github.com/toursproject/booking-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v session_ttl=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Session.TTL)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// shared runtime vars used by handlers/readiness
	var accountsSvc *accounts.Service
	var recordsSvc *records.Service

	// Connect to Redis early so sessions can live there when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis for session storage: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Prefer Redis-backed sessions when available; fall back to the in-memory
	// store, which matches the original single-process lifecycle (sessions do
	// not survive a restart).
	var sessionStore sessions.Store
	if redisClient != nil {
		sessionStore = sessions.NewRedisStore(redisClient, "session:")
		logger.Infof("Using Redis for session storage")
	} else {
		sessionStore = sessions.NewMemoryStore()
		logger.Infof("Using in-memory session storage")
	}
	sessionsSvc := sessions.NewService(sessionStore, cfg.Session.TTL)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["sessions"] = sessionStore != nil
		deps["accounts"] = accountsSvc != nil
		deps["records"] = recordsSvc != nil
		if accountsSvc == nil || recordsSvc == nil {
			ready = false
		}

		// Redis readiness only matters when it was configured
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Connect to MongoDB and initialize the account and record services
	ctx := context.Background()
	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
	if err != nil {
		logger.Warnf("%v", err)
	} else {
		defer func() { _ = client.Disconnect(ctx) }()
		db := client.Database(cfg.MongoDB.Database)
		accountsSvc = accounts.NewService(accounts.NewMongoRepository(db.Collection("users")))
		recordsSvc = records.NewService(records.NewMongoRepository(
			db.Collection("bookings"), db.Collection("payments"), db.Collection("reviews")))
	}

	// Register handlers. Pages only need the session gate; auth and record
	// intake also need MongoDB.
	gate := middleware.RequireSession(sessionsSvc, cfg.Session.CookieName)
	handlers.NewPageHandler(cfg).Register(r, gate)
	if accountsSvc != nil && recordsSvc != nil {
		handlers.NewAuthHandler(cfg, accountsSvc, sessionsSvc).Register(r.Group("/"))
		handlers.NewRecordHandler(recordsSvc).Register(r, gate)
	} else {
		logger.Warnf("auth and record handlers not registered because MongoDB is unavailable")
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("services: accounts=%v records=%v sessions=%v", accountsSvc != nil, recordsSvc != nil, sessionsSvc != nil)
	logger.Infof("Starting booking service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
