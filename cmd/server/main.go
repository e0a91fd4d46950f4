package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymkit/api/internal/config"
	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/handler"
	"github.com/gymkit/api/internal/middleware"
	"github.com/gymkit/api/internal/repository"
	"github.com/gymkit/api/internal/service"
	"github.com/gymkit/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: time.Duration(cfg.JWT.ExpirationMins) * time.Minute,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	traineeRepo := repository.NewTraineeRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	typeRepo := repository.NewTrainingTypeRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize services
	identity := service.NewIdentityGenerator(userRepo)
	validator := service.NewValidator()

	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService:      jwtService,
		TokenRepo:       tokenRepo,
		RefreshDuration: time.Duration(cfg.JWT.RefreshExpirationDays) * 24 * time.Hour,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		TokenService: tokenService,
	})

	traineeService := service.NewTraineeService(service.TraineeServiceConfig{
		UserRepo:     userRepo,
		TraineeRepo:  traineeRepo,
		TrainerRepo:  trainerRepo,
		TrainingRepo: trainingRepo,
		Identity:     identity,
		Validator:    validator,
	})

	trainerService := service.NewTrainerService(service.TrainerServiceConfig{
		UserRepo:     userRepo,
		TrainerRepo:  trainerRepo,
		TrainingRepo: trainingRepo,
		TypeRepo:     typeRepo,
		Identity:     identity,
		Validator:    validator,
	})

	trainingService := service.NewTrainingService(service.TrainingServiceConfig{
		TrainingRepo: trainingRepo,
		TraineeRepo:  traineeRepo,
		TrainerRepo:  trainerRepo,
		Validator:    validator,
	})

	typeService := service.NewTrainingTypeService(typeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	traineeHandler := handler.NewTraineeHandler(traineeService)
	trainerHandler := handler.NewTrainerHandler(trainerService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	typeHandler := handler.NewTrainingTypeHandler(typeService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health(db))

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /v1/auth/refresh", authHandler.Refresh)

	// Registration endpoints (public, they mint the credentials)
	mux.HandleFunc("POST /v1/trainees", traineeHandler.Register)
	mux.HandleFunc("POST /v1/trainers", trainerHandler.Register)

	// Protected endpoints
	authMiddleware := middleware.Auth(tokenService)
	mux.Handle("POST /v1/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout)))

	// Trainee endpoints
	mux.Handle("GET /v1/trainees", authMiddleware(http.HandlerFunc(traineeHandler.List)))
	mux.Handle("GET /v1/trainees/{username}", authMiddleware(http.HandlerFunc(traineeHandler.GetProfile)))
	mux.Handle("PUT /v1/trainees/{username}", authMiddleware(http.HandlerFunc(traineeHandler.UpdateProfile)))
	mux.Handle("DELETE /v1/trainees/{username}", authMiddleware(http.HandlerFunc(traineeHandler.Delete)))
	mux.Handle("GET /v1/trainees/{username}/trainings", authMiddleware(http.HandlerFunc(traineeHandler.GetTrainings)))
	mux.Handle("GET /v1/trainees/{username}/not-assigned-trainers", authMiddleware(http.HandlerFunc(traineeHandler.GetNotAssignedTrainers)))
	mux.Handle("PATCH /v1/trainees/{username}/activation", authMiddleware(http.HandlerFunc(traineeHandler.SetActivation)))
	mux.Handle("PUT /v1/trainees/{username}/password", authMiddleware(http.HandlerFunc(traineeHandler.ChangePassword)))

	// Trainer endpoints
	mux.Handle("GET /v1/trainers", authMiddleware(http.HandlerFunc(trainerHandler.List)))
	mux.Handle("GET /v1/trainers/{username}", authMiddleware(http.HandlerFunc(trainerHandler.GetProfile)))
	mux.Handle("PUT /v1/trainers/{username}", authMiddleware(http.HandlerFunc(trainerHandler.UpdateProfile)))
	mux.Handle("GET /v1/trainers/{username}/trainings", authMiddleware(http.HandlerFunc(trainerHandler.GetTrainings)))
	mux.Handle("PATCH /v1/trainers/{username}/activation", authMiddleware(http.HandlerFunc(trainerHandler.SetActivation)))
	mux.Handle("PUT /v1/trainers/{username}/password", authMiddleware(http.HandlerFunc(trainerHandler.ChangePassword)))

	// Training endpoints
	mux.Handle("POST /v1/trainings", authMiddleware(http.HandlerFunc(trainingHandler.Create)))
	mux.Handle("GET /v1/trainings", authMiddleware(http.HandlerFunc(trainingHandler.List)))
	mux.Handle("GET /v1/trainings/{id}", authMiddleware(http.HandlerFunc(trainingHandler.Get)))
	mux.Handle("PUT /v1/trainings/{id}", authMiddleware(http.HandlerFunc(trainingHandler.Update)))
	mux.Handle("DELETE /v1/trainings/{id}", authMiddleware(http.HandlerFunc(trainingHandler.Delete)))

	// Training type catalog endpoints
	mux.Handle("GET /v1/training-types", authMiddleware(http.HandlerFunc(typeHandler.List)))
	mux.Handle("GET /v1/training-types/{id}", authMiddleware(http.HandlerFunc(typeHandler.Get)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
