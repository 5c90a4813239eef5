package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"janseva/auth"
)

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/schemes", s.handleListSchemes)
		r.Get("/schemes/{schemeID}", s.handleGetScheme)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.auth))

			r.Get("/auth/me", s.handleMe)
			r.Post("/auth/logout", s.handleLogout)

			r.Put("/profile", s.handleUpdateProfile)

			r.Get("/schemes/recommendations", s.handleRecommendations)

			r.Post("/applications", s.handleSubmitApplication)
			r.Get("/applications", s.handleListApplications)
			r.Get("/applications/{applicationID}", s.handleGetApplication)
			r.Patch("/applications/{applicationID}/status", s.handleReviewApplication)

			r.Post("/grievances", s.handleSubmitGrievance)
			r.Get("/grievances", s.handleListGrievances)
			r.Get("/grievances/{grievanceID}", s.handleGetGrievance)
			r.Post("/grievances/{grievanceID}/response", s.handleRespondGrievance)

			r.Get("/documents/*", s.handleDownloadDocument)

			r.Post("/assistant/chat", s.handleChat)
		})
	})

	return r
}
