package handlers

import (
	"net/http"

	_ "github.com/affilink/creditmarket/docs"
	authhandlers "github.com/affilink/creditmarket/internal/handlers/auth"
	creditshandlers "github.com/affilink/creditmarket/internal/handlers/credits"
	purchasehandlers "github.com/affilink/creditmarket/internal/handlers/purchase"
	revealhandlers "github.com/affilink/creditmarket/internal/handlers/reveal"
	"github.com/affilink/creditmarket/internal/service"
	"github.com/affilink/creditmarket/pkg/auth"
	"github.com/affilink/creditmarket/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GrantDaily(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	Audit(w http.ResponseWriter, r *http.Request)
}

type RevealHandler interface {
	RequestReveal(w http.ResponseWriter, r *http.Request)
	CheckRevealed(w http.ResponseWriter, r *http.Request)
	GetReveals(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	CreatePurchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CreditsHandler  CreditsHandler
	RevealHandler   RevealHandler
	PurchaseHandler PurchaseHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CreditsHandler:  creditshandlers.New(s.CreditService),
		RevealHandler:   revealhandlers.New(s.RevealService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/credits", func(r chi.Router) {
					r.Get("/", h.CreditsHandler.GetBalance)
					r.Post("/daily", h.CreditsHandler.GrantDaily)
					r.Get("/history", h.CreditsHandler.GetHistory)
					r.Post("/purchase", h.PurchaseHandler.CreatePurchase)
					r.Get("/purchases", h.PurchaseHandler.GetPurchases)
				})
				r.Route("/reveals", func(r chi.Router) {
					r.Post("/", h.RevealHandler.RequestReveal)
					r.Get("/", h.RevealHandler.GetReveals)
					r.Get("/{targetID}", h.RevealHandler.CheckRevealed)
				})
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole("admin"))
			r.Post("/credits/adjust", h.CreditsHandler.Adjust)
			r.Get("/credits/audit/{userID}", h.CreditsHandler.Audit)
		})
	})

	return r
}
