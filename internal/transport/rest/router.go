package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/user-management/internal/admin"
	"github.com/frahmantamala/user-management/internal/auth"
	"github.com/frahmantamala/user-management/internal/customer"
	"github.com/frahmantamala/user-management/internal/identity"
	"github.com/frahmantamala/user-management/internal/staff"
	"github.com/frahmantamala/user-management/internal/transport/middleware"
	"github.com/frahmantamala/user-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	identityHandler *identity.Handler,
	adminHandler *admin.Handler,
	customerHandler *customer.Handler,
	staffHandler *staff.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
			})
		}

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			if authHandler != nil {
				pr.Use(authHandler.AuthMiddleware)
			}

			// Identity routes
			if identityHandler != nil {
				pr.Route("/identities", func(ir chi.Router) {
					ir.Get("/", identityHandler.ListIdentities)
					ir.Get("/{id}", identityHandler.GetIdentity)
					ir.Patch("/{id}", identityHandler.UpdateIdentity)

					// Only admins may create or remove identities
					ir.Group(func(ar chi.Router) {
						ar.Use(middleware.RequireRoles(identity.RoleAdmin))
						ar.Post("/", identityHandler.CreateIdentity)
						ar.Delete("/{id}", identityHandler.DeleteIdentity)
					})
				})
			}

			// Admin profile routes
			if adminHandler != nil {
				pr.Route("/admins", func(ar chi.Router) {
					ar.Use(middleware.RequireRoles(identity.RoleAdmin))
					ar.Post("/", adminHandler.CreateAdmin)
					ar.Get("/", adminHandler.GetAdmins)
					ar.Get("/{id}", adminHandler.GetAdmin)
					ar.Patch("/{id}", adminHandler.UpdateAdmin)
					ar.Delete("/{id}", adminHandler.DeleteAdmin)
				})
			}

			// Customer profile routes
			if customerHandler != nil {
				pr.Route("/customers", func(cr chi.Router) {
					cr.Post("/", customerHandler.CreateCustomer)
					cr.Get("/", customerHandler.ListCustomers)
					cr.Get("/top", customerHandler.GetTopCustomers)
					cr.Get("/loyalty/{level}", customerHandler.GetCustomersByLoyaltyLevel)
					cr.Get("/{id}", customerHandler.GetCustomer)
					cr.Patch("/{id}", customerHandler.UpdateCustomer)
					cr.Patch("/{id}/loyalty", customerHandler.UpdateLoyaltyLevel)
					cr.Patch("/{id}/order-stats", customerHandler.UpdateOrderStats)

					cr.Group(func(dr chi.Router) {
						dr.Use(middleware.RequireRoles(identity.RoleAdmin))
						dr.Delete("/{id}", customerHandler.DeleteCustomer)
					})
				})
			}

			// Staff profile routes
			if staffHandler != nil {
				pr.Route("/staff", func(sr chi.Router) {
					sr.Post("/", staffHandler.CreateStaff)
					sr.Get("/", staffHandler.GetStaff)
					sr.Get("/{id}", staffHandler.GetStaffMember)
					sr.Patch("/{id}", staffHandler.UpdateStaff)

					sr.Group(func(dr chi.Router) {
						dr.Use(middleware.RequireRoles(identity.RoleAdmin))
						dr.Delete("/{id}", staffHandler.DeleteStaff)
					})
				})
			}
		})
	})
}
