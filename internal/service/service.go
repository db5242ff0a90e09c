package service

import (
	"github.com/affilink/creditmarket/internal/handlers/auth"
	"github.com/affilink/creditmarket/internal/handlers/credits"
	"github.com/affilink/creditmarket/internal/handlers/purchase"
	"github.com/affilink/creditmarket/internal/handlers/reveal"

	pkgauth "github.com/affilink/creditmarket/pkg/auth"

	"github.com/affilink/creditmarket/internal/repo"
	"github.com/affilink/creditmarket/internal/service/authservice"
	"github.com/affilink/creditmarket/internal/service/creditservice"
	"github.com/affilink/creditmarket/internal/service/purchaseservice"
	"github.com/affilink/creditmarket/internal/service/revealservice"
)

type Services struct {
	AuthService     auth.Service
	CreditService   credits.Service
	RevealService   reveal.Service
	PurchaseService purchase.Service
}

func New(repo *repo.Repositories) *Services {
	creditService := creditservice.New(repo.CreditRepo, repo.TxManager)
	revealService := revealservice.New(repo.RevealRepo, repo.ProfileRepo, repo.RateLimitRepo, creditService, repo.TxManager)
	purchaseService := purchaseservice.New(repo.PurchaseRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		CreditService:   creditService,
		RevealService:   revealService,
		PurchaseService: purchaseService,
	}
}
