package repo

import (
	"github.com/affilink/creditmarket/internal/pg"
	creditrepo "github.com/affilink/creditmarket/internal/repo/credit-repo"
	purchaserepo "github.com/affilink/creditmarket/internal/repo/purchase-repo"
	ratelimitrepo "github.com/affilink/creditmarket/internal/repo/ratelimit-repo"
	revealrepo "github.com/affilink/creditmarket/internal/repo/reveal-repo"
	userrepo "github.com/affilink/creditmarket/internal/repo/user-repo"
	"github.com/affilink/creditmarket/internal/service/authservice"
	"github.com/affilink/creditmarket/internal/service/creditservice"
	"github.com/affilink/creditmarket/internal/service/revealservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	ProfileRepo   revealservice.UserRepo
	CreditRepo    creditservice.CreditRepo
	RevealRepo    revealservice.RevealRepo
	RateLimitRepo revealservice.RateLimitRepo
	PurchaseRepo  *purchaserepo.Repository
	TxManager     pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	creditRepo := creditrepo.New(conn)
	revealRepo := revealrepo.New(conn)
	rateLimitRepo := ratelimitrepo.New(conn)
	purchaseRepo := purchaserepo.New(conn)

	return &Repositories{
		UserRepo:      userRepo,
		ProfileRepo:   userRepo,
		CreditRepo:    creditRepo,
		RevealRepo:    revealRepo,
		RateLimitRepo: rateLimitRepo,
		PurchaseRepo:  purchaseRepo,
		TxManager:     txManager,
	}
}
