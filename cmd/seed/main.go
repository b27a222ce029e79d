package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mimarfolio/internal/config"
	"mimarfolio/internal/db"
	"mimarfolio/internal/logging"
	"mimarfolio/internal/model"
	"mimarfolio/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.AppEnv)

	log.Info("starting seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Testimonial{},
		&model.Service{},
		&model.TeamMember{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := seed.Run(context.Background(), gormDB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Info("seed completed")
}
