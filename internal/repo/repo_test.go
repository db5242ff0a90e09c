package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/affilink/creditmarket/internal/pg"
	creditrepo "github.com/affilink/creditmarket/internal/repo/credit-repo"
	purchaserepo "github.com/affilink/creditmarket/internal/repo/purchase-repo"
	ratelimitrepo "github.com/affilink/creditmarket/internal/repo/ratelimit-repo"
	revealrepo "github.com/affilink/creditmarket/internal/repo/reveal-repo"
	userrepo "github.com/affilink/creditmarket/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ProfileRepo)
	assert.NotNil(t, repo.CreditRepo)
	assert.NotNil(t, repo.RevealRepo)
	assert.NotNil(t, repo.RateLimitRepo)
	assert.NotNil(t, repo.PurchaseRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &creditrepo.Repository{}, repo.CreditRepo)
	assert.IsType(t, &revealrepo.Repository{}, repo.RevealRepo)
	assert.IsType(t, &ratelimitrepo.Repository{}, repo.RateLimitRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
