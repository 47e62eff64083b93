package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"newsdesk/internal/auth"
	"newsdesk/internal/config"
	"newsdesk/internal/handler"
	"newsdesk/internal/mailer"
	"newsdesk/internal/mediastore"
	"newsdesk/internal/repository"
	"newsdesk/internal/storage"
	"newsdesk/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	cfg := config.New(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := storage.ConnectMongo(ctx, &logger, cfg.MongoURI)
	defer storage.Disconnect(context.Background(), &logger, client)
	db := client.Database(cfg.MongoDB)

	store, err := mediastore.NewStore(cfg.MediaDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize media store")
	}

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	verificationRepo := repository.NewVerificationMongoRepository(ctx, &logger, db)
	categoryRepo := repository.NewCategoryMongoRepository(ctx, &logger, db)
	newsRepo := repository.NewNewsMongoRepository(ctx, &logger, db)
	mediaRepo := repository.NewMediaMongoRepository(ctx, &logger, db)
	commentRepo := repository.NewCommentMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.ExpiresIn)
	smtpMailer := mailer.NewMailer(&logger)

	authUsecase := usecase.NewAuthUsecase(userRepo, verificationRepo, jwtAuth, smtpMailer)
	userUsecase := usecase.NewUserUsecase(userRepo)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo)
	newsUsecase := usecase.NewNewsUsecase(newsRepo, categoryRepo, store, &logger)
	mediaUsecase := usecase.NewMediaUsecase(mediaRepo, newsRepo, store, &logger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, newsRepo)

	router := handler.NewRouter(handler.Handlers{
		Auth:     handler.NewAuthHandler(authUsecase, &logger),
		User:     handler.NewUserHandler(userUsecase, &logger),
		Category: handler.NewCategoryHandler(categoryUsecase, &logger),
		News:     handler.NewNewsHandler(newsUsecase, store, &logger),
		Media:    handler.NewMediaHandler(mediaUsecase, store, &logger),
		Comment:  handler.NewCommentHandler(commentUsecase, &logger),
		AuthMW:   handler.NewAuthMiddleware(jwtAuth, userRepo, &logger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Port).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server")
	}
}
