package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talent-api/internal/config"
	"github.com/talent-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/talent-api/internal/infrastructure/jwt"
	s3infra "github.com/talent-api/internal/infrastructure/s3"
	"github.com/talent-api/internal/infrastructure/smtp"
	transporthttp "github.com/talent-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	userTypeRepo := dynamo.NewUserTypeRepo(dynamoClient, cfg.DynamoTables.UserTypes)
	dynamo.SeedUserTypes(context.Background(), userTypeRepo)

	// JWT provider. Without a keypair the API still serves, but signing and
	// token verification fail with a missing-key error.
	jwtProvider := jwtinfra.NewUnconfigured()
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for candidate resumes.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer for verification codes.
	mailer := smtp.NewMailer(cfg)

	deps := &transporthttp.Deps{
		UserRepo:      dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		UserTypeRepo:  userTypeRepo,
		OTPRepo:       dynamo.NewOTPRepo(dynamoClient, cfg.DynamoTables.OTPCodes),
		EmployeeRepo:  dynamo.NewEmployeeRepo(dynamoClient, cfg.DynamoTables.Employees),
		CandidateRepo: dynamo.NewCandidateRepo(dynamoClient, cfg.DynamoTables.Candidates),
		TrainerRepo:   dynamo.NewTrainerRepo(dynamoClient, cfg.DynamoTables.Trainers),
		ObjectStore:   s3Store,
		Mailer:        mailer,
		JWTProvider:   jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
