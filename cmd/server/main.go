package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	_ "mimarfolio/docs" // swagger docs

	"mimarfolio/internal/auth"
	"mimarfolio/internal/cache"
	"mimarfolio/internal/config"
	"mimarfolio/internal/db"
	"mimarfolio/internal/handler"
	"mimarfolio/internal/logging"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/router"
	"mimarfolio/internal/service"
	"mimarfolio/internal/storage"
)

// @title Mimarfolio API
// @version 1.0
// @description Marketing site and admin back office API for an architecture firm.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.AppEnv)

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

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	teamRepo := repository.NewTeamMemberRepository(gormDB)
	messageRepo := repository.NewContactMessageRepository(gormDB)

	// Initialize upload storage
	var store storage.Storage
	if cfg.UseS3() {
		store, err = storage.NewS3(context.Background(), storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
		})
		if err != nil {
			log.Fatalf("s3 storage init: %v", err)
		}
		log.WithField("bucket", cfg.S3Bucket).Info("uploads go to S3")
	} else {
		store, err = storage.NewLocal(cfg.UploadDir, cfg.UploadBaseURL)
		if err != nil {
			log.Fatalf("local storage init: %v", err)
		}
		log.WithField("dir", cfg.UploadDir).Info("uploads go to local disk")
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	testimonialService := service.NewTestimonialService(testimonialRepo, cacheClient)
	serviceService := service.NewServiceService(serviceRepo, cacheClient)
	teamService := service.NewTeamService(teamRepo, cacheClient)
	contactService := service.NewContactService(messageRepo)
	statsService := service.NewStatsService(projectRepo, teamRepo, testimonialRepo, messageRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Project:     handler.NewProjectHandler(projectService),
		Testimonial: handler.NewTestimonialHandler(testimonialService),
		Service:     handler.NewServiceHandler(serviceService),
		Team:        handler.NewTeamHandler(teamService),
		Contact:     handler.NewContactHandler(contactService),
		Upload:      handler.NewUploadHandler(store),
		Stats:       handler.NewStatsHandler(statsService),
	}, jwtService, userRepo)

	if !cfg.UseS3() {
		e.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	addr := ":" + cfg.ServerPort
	log.WithField("addr", addr).Info("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
