package http

import (
	"net/http"

	"github.com/fixithub/universe/internal/application/auth"
	"github.com/fixithub/universe/internal/application/docket"
	"github.com/fixithub/universe/internal/application/issue"
	"github.com/fixithub/universe/internal/config"
	"github.com/fixithub/universe/internal/domain"
	"github.com/fixithub/universe/internal/transport/http/handler"
	appmiddleware "github.com/fixithub/universe/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	authSvc := auth.NewService(auth.ServiceDeps{
		Store:        deps.Credentials,
		Mailer:       deps.Mailer,
		EmailTimeout: cfg.EmailSendTimeout,
	})
	issueSvc := issue.NewService(deps.IssueRepo, deps.PhotoStore, deps.Credentials)
	docketSvc := docket.NewService(deps.DocketRepo)

	authH := handler.NewAuthHandler(authSvc, deps.JWTProvider)
	emailH := handler.NewEmailHandler(deps.Mailer, cfg.EmailSendTimeout)
	issueH := handler.NewIssueHandler(issueSvc)
	docketH := handler.NewDocketHandler(docketSvc)
	healthH := handler.NewHealthHandler()

	// Original web-app contract: auth flow and the raw email gateway.
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authH.Signup)
		r.Post("/auth/verify", authH.Verify)
		r.Post("/auth/login", authH.Login)
		r.Post("/send-verification", emailH.SendVerification)
		r.Post("/send-welcome", emailH.SendWelcome)
	})

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Get("/issues", issueH.List)
		r.Get("/issues/categories", issueH.Categories)
		r.Get("/issues/{id}", issueH.Get)
		r.Get("/dockets", docketH.List)
		r.Get("/dockets/categories", docketH.Categories)
		r.Get("/dockets/{id}", docketH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/issues", issueH.Report)
			r.Post("/issues/{id}/photo", issueH.AttachPhoto)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Put("/issues/{id}/status", issueH.UpdateStatus)
				r.Get("/admin/stats", issueH.Stats)
			})
		})
	})

	return r
}
