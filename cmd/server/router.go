package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bookshelf-api/internal/api"
	apiMiddleware "github.com/phrazzld/bookshelf-api/internal/api/middleware"
	"github.com/phrazzld/bookshelf-api/internal/redact"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	bookHandler := api.NewBookHandler(app.bookService, app.logger)

	r.Route("/books", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		bookHandler.Routes(r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", redact.ErrorAttr(err))
		}
	})

	return r
}
