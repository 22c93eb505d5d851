package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/db"
	"github.com/DB1132/Odoo-hackathon/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Open(cfg.DbDriver, cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg)

	if !cfg.MailEnabled() {
		log.Printf("smtp not configured, leave decision mails are disabled")
	}
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
