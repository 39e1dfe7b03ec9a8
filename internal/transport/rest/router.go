package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/citizenserve/complaint-management/internal/agency"
	"github.com/citizenserve/complaint-management/internal/auth"
	"github.com/citizenserve/complaint-management/internal/complaint"
	"github.com/citizenserve/complaint-management/internal/transport/middleware"
	"github.com/citizenserve/complaint-management/internal/transport/swagger"
	"github.com/citizenserve/complaint-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the full HTTP surface. Everything apart from the
// OpenAPI document and Swagger UI lives under /api; complaint reads are
// public while writes require a token, and moderation is admin-gated.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, complaintHandler *complaint.Handler, agencyHandler *agency.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	rbac := auth.NewRBACAuthorization(logger)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/users", func(ur chi.Router) {
			ur.Post("/register", authHandler.Register)
			ur.Post("/login", authHandler.Login)

			ur.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Get("/profile", userHandler.GetProfile)

				pr.Group(func(ar chi.Router) {
					ar.Use(rbac.RequireAdmin())
					ar.Get("/", userHandler.GetUsers)
					ar.Get("/{id}", userHandler.GetUser)
					ar.Put("/{id}", userHandler.UpdateUser)
					ar.Delete("/{id}", userHandler.DeleteUser)
				})
			})
		})

		r.Route("/complaints", func(cr chi.Router) {
			// Listings and threads are readable without a token
			cr.Get("/", complaintHandler.ListComplaints)
			cr.Get("/{id}", complaintHandler.GetComplaint)
			cr.Get("/{id}/responses", complaintHandler.ListResponses)

			cr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Post("/", complaintHandler.CreateComplaint)
				pr.Post("/{id}/responses", complaintHandler.AddResponse)

				pr.Group(func(ar chi.Router) {
					ar.Use(rbac.RequireAdmin())
					ar.Patch("/{id}/status", complaintHandler.UpdateStatus)
					ar.Patch("/{id}/priority", complaintHandler.UpdatePriority)
					ar.Patch("/{id}/assign", complaintHandler.AssignComplaint)
					ar.Delete("/{id}", complaintHandler.DeleteComplaint)
				})
			})
		})

		r.Route("/agencies", func(agr chi.Router) {
			agr.Use(authHandler.AuthMiddleware)
			agr.Use(rbac.RequireAdmin())
			agr.Get("/", agencyHandler.GetAgencies)
			agr.Post("/", agencyHandler.CreateAgency)
		})
	})
}
