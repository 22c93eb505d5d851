// Command seed creates the demo admin and employee accounts. Running it
// again leaves existing accounts alone.
package main

import (
	"context"
	"log"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/db"
	"github.com/DB1132/Odoo-hackathon/internal/services"
)

const adminLogin = "admin@dayflow.com"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	database, err := db.Open(cfg.DbDriver, cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	bootstrap := cfg.AdminBootstrap
	if bootstrap == "" {
		bootstrap = adminLogin
	}
	accounts := services.NewAccountService(database, bootstrap)

	seeds := []services.RegisterInput{
		{LoginID: bootstrap, EmployeeID: "ADMIN001", DisplayName: "Dayflow Admin", Password: cfg.SeedAdminPassword},
		{LoginID: "emp2@dayflow.com", EmployeeID: "EMP002", DisplayName: "Demo Employee", Password: cfg.SeedEmployeePassword},
	}
	for _, seed := range seeds {
		account, err := accounts.Register(context.Background(), seed)
		switch {
		case services.IsKind(err, services.KindConflict):
			log.Printf("seed: %s already exists", seed.LoginID)
		case err != nil:
			log.Fatalf("seed %s: %v", seed.LoginID, err)
		default:
			log.Printf("seed: created %s (%s)", account.LoginID, account.Role)
		}
	}
}
