package app

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inwakeofquake/shareit/config"
	"github.com/inwakeofquake/shareit/db"
)

// shorthand for handlers
type Ctx = gin.Context
type H = gin.H

// App aggregates the server tier's dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config config.Config
}

func MustNew(cfg config.Config) *App {
	conn := db.ConnectDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	r.Use(RequestID())
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: conn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }
