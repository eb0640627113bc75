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

	"github.com/fixithub/universe/internal/config"
	"github.com/fixithub/universe/internal/infrastructure/dynamo"
	jwtinfra "github.com/fixithub/universe/internal/infrastructure/jwt"
	resendinfra "github.com/fixithub/universe/internal/infrastructure/resend"
	s3infra "github.com/fixithub/universe/internal/infrastructure/s3"
	"github.com/fixithub/universe/internal/store/memory"
	transporthttp "github.com/fixithub/universe/internal/transport/http"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist) and seed
	// the starter issues/dockets into fresh environments.
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)
	issueRepo := dynamo.NewIssueRepo(dynamoClient, cfg.DynamoTables.Issues)
	docketRepo := dynamo.NewDocketRepo(dynamoClient, cfg.DynamoTables.Dockets)
	dynamo.Seed(context.Background(), issueRepo, docketRepo)

	// S3 photo store.
	s3Client := s3infra.NewClient(cfg)
	photoStore := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// Resend mailer, optional. The auth flow reports delivery failures when absent.
	var mailer resendinfra.Mailer
	if m, err := resendinfra.NewMailer(cfg); err == nil {
		mailer = m
	} else {
		log.Printf("WARN: mailer not available: %v", err)
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	// In-memory credential store; accounts live for the process lifetime.
	credentials := memory.NewStore()
	if cfg.AdminEmail != "" && cfg.AdminName != "" && cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		if err := credentials.SeedAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, string(hash)); err != nil {
			log.Fatalf("seed admin account: %v", err)
		}
		log.Printf("seeded admin account for %s", cfg.AdminEmail)
	}

	deps := &transporthttp.Deps{
		Credentials: credentials,
		IssueRepo:   issueRepo,
		DocketRepo:  docketRepo,
		PhotoStore:  photoStore,
		Mailer:      mailer,
		JWTProvider: jwtProvider,
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
