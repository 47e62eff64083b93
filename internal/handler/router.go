package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	News     *NewsHandler
	Media    *MediaHandler
	Comment  *CommentHandler
	AuthMW   *AuthMiddleware
}

// NewRouter builds the API route tree. Reads are public; mutations on
// categories, news, media and user administration require the admin role,
// and the comment endpoints require an authenticated account.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Category.List)
			r.Get("/{id}", h.Category.Get)

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.Authenticate, h.AuthMW.RequireAdmin)
				r.Post("/", h.Category.Create)
				r.Patch("/{id}", h.Category.Update)
				r.Patch("/deActivate/{id}", h.Category.Deactivate)
			})
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.News.List)
			r.Get("/search", h.News.Search)
			r.Get("/{id}", h.News.Get)

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.Authenticate, h.AuthMW.RequireAdmin)
				r.Post("/", h.News.Create)
				r.Patch("/{id}", h.News.Update)
				r.Patch("/deActivate/{id}", h.News.Deactivate)
			})
		})

		r.Route("/media", func(r chi.Router) {
			r.Get("/", h.Media.List)

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.Authenticate, h.AuthMW.RequireAdmin)
				r.Post("/handleMedia", h.Media.Upload)
				r.Delete("/", h.Media.Delete)
				r.Patch("/{id}", h.Media.Update)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(h.AuthMW.Authenticate)

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.RequireUser)
				r.Get("/", h.Comment.List)
				r.Get("/{id}", h.Comment.Get)
			})

			r.Post("/", h.Comment.Create)
			r.Patch("/{id}", h.Comment.Update)
			r.Delete("/{id}", h.Comment.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/signup", h.Auth.Signup)
			r.Post("/sendEmail", h.Auth.SendEmail)
			r.Post("/verify", h.Auth.Verify)

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.Authenticate)
				r.Get("/userVerification", h.Auth.VerificationStatus)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.AuthMW.Authenticate, h.AuthMW.RequireAdmin)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Delete("/{id}", h.User.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondMessage(w, http.StatusNotFound, "route not found")
	})

	return r
}
