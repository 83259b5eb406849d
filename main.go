package main

import (
	"log"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/config"
	"github.com/inwakeofquake/shareit/gateway"
	"github.com/inwakeofquake/shareit/routes"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if cfg.Role == "gateway" {
		r := gateway.NewRouter(cfg)
		log.Printf("gateway listening on :%s, forwarding to %s", cfg.Port, cfg.ServerURL)
		_ = r.Run(":" + cfg.Port)
		return
	}

	application := app.MustNew(cfg)
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	log.Printf("server listening on :%s", cfg.Port)
	_ = r.Run(":" + cfg.Port)
}
