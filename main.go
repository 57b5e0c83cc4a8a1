package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// 1) Config & logger
	cfg, err := LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2) Durable store
	db, err := OpenDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	if err := AutoMigrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// 3) Catalog (missing index is survivable; requests will report it)
	catalog := NewFileCatalog(cfg.Catalog.Dir, logger)
	if entries, err := catalog.Datasets(); err != nil {
		logger.Warn("dataset index unavailable", zap.String("dir", cfg.Catalog.Dir), zap.Error(err))
	} else {
		logger.Info("catalog ready", zap.Int("datasets", len(entries)))
	}

	// 4) Engine
	progress := NewProgressStore(NewDBKV(db, logger), logger)
	sessions := NewSessionManager(catalog, progress, NewMemKV(), logger)

	// 5) Router
	r := NewRouter(cfg.Server.AllowedOrigin, catalog, sessions, progress)

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

// NewLogger builds the zap logger for the configured level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// NewRouter wires the API routes; split out so tests can drive the full
// HTTP surface.
func NewRouter(allowedOrigin string, catalog *FileCatalog, sessions *SessionManager, progress *ProgressStore) *gin.Engine {
	r := gin.Default()

	// CORS: the static front-end origin plus any localhost:port in dev.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowedOrigin != "" && origin == allowedOrigin {
				return true
			}
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		// Catalog
		api.GET("/datasets", ListDatasets(catalog))
		api.GET("/chapters", ListChapters(catalog))

		// Practice rounds
		api.POST("/quiz", StartQuiz(sessions))
		api.POST("/quiz/:id/answer", AnswerQuiz(sessions))
		api.POST("/quiz/:id/finish", FinishQuiz(sessions))
		api.GET("/quiz/last-answers", LastAnswers(sessions))

		// Progress & stats
		api.GET("/stats", Stats(progress))
		api.POST("/stats/clear-wrong", ClearWrong(progress))
		api.POST("/stats/clear-subjects", ClearSubjects(progress))
	}
	return r
}
