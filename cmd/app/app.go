package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushub/club-directory/internal/adapters/config"
	redisStorage "github.com/campushub/club-directory/internal/adapters/database/redis"
	"github.com/campushub/club-directory/internal/adapters/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type App struct {
	Engine *gin.Engine
	Server *http.Server
	DB     *gorm.DB
	Redis  *redisStorage.Client
	Logger *logger.Logger
}

func New(cfg *config.Config) (*App, error) {
	if !viper.GetBool("settings.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	app := &App{
		Engine: engine,
		Server: &http.Server{
			Addr:    fmt.Sprintf(":%d", viper.GetInt("service.http.port")),
			Handler: engine,
		},
		DB:     cfg.Database,
		Redis:  cfg.Redis,
		Logger: httpLogger,
	}

	return app, nil
}

// Start serves HTTP until SIGINT/SIGTERM, then drains in-flight requests and
// closes the database pool.
func (a *App) Start() {
	go func() {
		logger.Log.Infof("Server starting on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Panicf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Server.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Failed to shut down server: %v", err)
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			logger.Log.Errorf("Failed to close database: %v", err)
		}
	}

	logger.Log.Info("Server stopped")
}
