package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"coderrBack/internal/config"
	"coderrBack/internal/handlers"
	"coderrBack/internal/repositories"
	"coderrBack/internal/services"
	"coderrBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	jwtSigningKey   string
	userRepo        *repositories.UserRepository
	userHandler     *handlers.UserHandler
	offerHandler    *handlers.OfferHandler
	orderHandler    *handlers.OrderHandler
	reviewHandler   *handlers.ReviewHandler
	baseInfoHandler *handlers.BaseInfoHandler
}

func initializeApp(db *sql.DB, redisClient *redis.Client, tokenManager *utils.Manager, storage *utils.S3Storage, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	baseInfoRepo := repositories.BaseInfoRepository{DB: db}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		Storage:      storage,
		AccessTTL:    time.Duration(cfg.JWT.AccessTTLMin) * time.Minute,
		RefreshTTL:   time.Duration(cfg.JWT.RefreshTTLHours) * time.Hour,
	}
	offerService := &services.OfferService{OfferRepo: &offerRepo, Storage: storage}
	orderService := &services.OrderService{OrderRepo: &orderRepo, OfferRepo: &offerRepo, UserRepo: &userRepo}
	reviewService := &services.ReviewService{ReviewsRepo: &reviewRepo, UserRepo: &userRepo}
	baseInfoService := &services.BaseInfoService{BaseInfoRepo: &baseInfoRepo, Redis: redisClient}

	// Handlers
	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		jwtSigningKey:   cfg.JWT.SigningKey,
		userRepo:        &userRepo,
		userHandler:     &handlers.UserHandler{Service: userService},
		offerHandler:    &handlers.OfferHandler{Service: offerService},
		orderHandler:    &handlers.OrderHandler{Service: orderService},
		reviewHandler:   &handlers.ReviewHandler{Service: reviewService},
		baseInfoHandler: &handlers.BaseInfoHandler{Service: baseInfoService},
	}
}
