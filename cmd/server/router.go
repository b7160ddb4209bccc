package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api"
	apiMiddleware "github.com/DamVador/Hanyu-VocabTracker/internal/api/middleware"
)

// setupRouter builds the HTTP routes of the application.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	wordHandler := api.NewWordHandler(app.wordService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	statisticsHandler := api.NewStatisticsHandler(app.statisticsService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/words", wordHandler.CreateWord)
		r.Route("/words/{id}", func(r chi.Router) {
			r.Get("/", wordHandler.GetWord)
			r.Delete("/", wordHandler.DeleteWord)
			r.Get("/review", reviewHandler.GetReview)
			r.Post("/review", reviewHandler.SubmitAnswer)
		})

		r.Get("/reviews/due", reviewHandler.ListDue)

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/learning-status", statisticsHandler.LearningStatus)
			r.Get("/words-added", statisticsHandler.WordsAdded)
			r.Get("/words-reviewed", statisticsHandler.WordsReviewed)
			r.Get("/accuracy", statisticsHandler.Accuracy)
			r.Get("/difficult-words", statisticsHandler.DifficultWords)
			r.Get("/streak", statisticsHandler.Streak)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
