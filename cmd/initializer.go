package main

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/config"
	"tasteTribeBack/internal/handlers"
	"tasteTribeBack/internal/repositories"
	"tasteTribeBack/internal/services"
	"tasteTribeBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	verifier        auth.TokenVerifier
	userRepo        *repositories.UserRepository
	userHandler     *handlers.UserHandler
	reviewHandler   *handlers.ReviewHandler
	favoriteHandler *handlers.FavoriteHandler
	statsHandler    *handlers.StatsHandler
	paymentHandler  *handlers.PaymentHandler
	uploadHandler   *handlers.UploadHandler
	db              *sql.DB
}

func initializeApp(db *sql.DB, rdb *redis.Client, verifier auth.TokenVerifier, storage *utils.Storage, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	statsRepo := repositories.StatsRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	reviewService := &services.ReviewService{ReviewsRepo: &reviewRepo, FavoritesRepo: &favoriteRepo, Users: &userRepo}
	favoriteService := &services.FavoriteService{FavoritesRepo: &favoriteRepo, ReviewsRepo: &reviewRepo}
	statsService := &services.StatsService{StatsRepo: &statsRepo, RDB: rdb}
	paymentService := &services.PaymentService{
		MerchantID: cfg.Payments.MerchantID,
		SecretKey:  cfg.Payments.SecretKey,
		Currency:   cfg.Payments.Currency,
		Packages:   cfg.Payments.Packages,
	}
	if paymentService.Currency == "" {
		paymentService.Currency = "usd"
	}
	if len(paymentService.Packages) == 0 {
		paymentService.Packages = map[string]int64{
			"monthly": 999,
			"yearly":  9900,
		}
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	statsHandler := &handlers.StatsHandler{Service: statsService}
	paymentHandler := &handlers.PaymentHandler{Payments: paymentService, Users: userService}
	uploadHandler := &handlers.UploadHandler{}
	if storage != nil {
		uploadHandler.Storage = storage
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		verifier:        verifier,
		userRepo:        &userRepo,
		userHandler:     userHandler,
		reviewHandler:   reviewHandler,
		favoriteHandler: favoriteHandler,
		statsHandler:    statsHandler,
		paymentHandler:  paymentHandler,
		uploadHandler:   uploadHandler,
		db:              db,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
