package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/newmoodle/backend/conf"
	"github.com/newmoodle/backend/feedback"
	feedbackhttp "github.com/newmoodle/backend/feedback/http"
	"github.com/newmoodle/backend/llm"
	"github.com/newmoodle/backend/objstore"
	"github.com/newmoodle/backend/ocr"
	"github.com/newmoodle/backend/subm"
	submhttp "github.com/newmoodle/backend/subm/http"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store, err := objstore.NewS3Store(ctx, conf.GetS3Region(), conf.GetSubmBucket())
	if err != nil {
		slog.Error("failed to create s3 store", "error", err)
		os.Exit(1)
	}

	generator := llm.NewClient(
		conf.GetOpenAIBaseURL(),
		conf.GetOpenAIKey(),
		conf.GetOpenAITextModel(),
		conf.GetOpenAIVisionModel(),
		conf.GetLLMTimeout(),
	)

	submRepo := subm.NewPgSubmRepo(pool)
	assignRepo := subm.NewPgAssignmentRepo(pool)
	userRepo := subm.NewPgUserRepo(pool)
	feedbackRepo := feedback.NewPgRepo(pool)

	submSrvc := subm.NewSubmSrvc(submRepo, assignRepo, userRepo, store)

	var feedbackOpts []feedback.Option
	if conf.GetFeedbackOCRMode() {
		recognizer := ocr.NewClient(conf.GetVisionEndpoint(), conf.GetVisionKey(), conf.GetOCRTimeout())
		feedbackOpts = append(feedbackOpts, feedback.WithOCR(recognizer))
	}
	feedbackSrvc := feedback.NewFeedbackSrvc(
		feedbackRepo, submRepo, assignRepo, store, generator, feedbackOpts...)

	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("newmoodle", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})
	router.Use(httplog.RequestLogger(httpLogger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	submhttp.NewSubmHttpHandler(submSrvc, userRepo).RegisterRoutes(router)
	feedbackhttp.NewFeedbackHttpHandler(feedbackSrvc, userRepo).RegisterRoutes(router)

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = http.ListenAndServe(address, router)
	log.Printf("Server stopped with error: %v", err)
}
