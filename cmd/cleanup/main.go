// Command cleanup removes attendance rows that have no check-in time.
package main

import (
	"context"
	"log"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/db"
	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.AdminBootstrap == "" {
		log.Fatalf("config error: ADMIN_BOOTSTRAP_EMAIL is required to run the cleanup")
	}
	database, err := db.Open(cfg.DbDriver, cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	var admin models.Account
	if err := database.Where("login_id = ? AND role = ?", cfg.AdminBootstrap, models.RoleAdmin).First(&admin).Error; err != nil {
		log.Fatalf("admin %s not found: %v", cfg.AdminBootstrap, err)
	}

	ctx := context.Background()
	removed, err := services.NewAttendanceService(database).PurgeInvalid(ctx, services.Actor{ID: admin.ID, Role: admin.Role})
	if err != nil {
		log.Fatalf("cleanup error: %v", err)
	}

	var remaining int64
	if err := database.WithContext(ctx).Model(&models.Attendance{}).Count(&remaining).Error; err != nil {
		log.Fatalf("count error: %v", err)
	}
	log.Printf("cleanup: deleted %d invalid attendance records, %d remain", removed, remaining)
}
