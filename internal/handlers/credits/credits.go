package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/dto"
	"github.com/affilink/creditmarket/internal/service/creditservice"
	"github.com/affilink/creditmarket/pkg/auth"
	"github.com/affilink/creditmarket/pkg/metrics"
	"github.com/affilink/creditmarket/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GrantDaily(ctx context.Context, userID int) (*domain.CreditTransaction, error)
	Debit(ctx context.Context, userID, amount int, txType, description string, relatedRevealID *string) (*domain.CreditTransaction, error)
	Credit(ctx context.Context, userID, amount int, txType, description string) (*domain.CreditTransaction, error)
	GetHistory(ctx context.Context, userID int) ([]domain.CreditTransaction, error)
	Audit(ctx context.Context, userID int) error
}

type CreditsHandler struct {
	creditService Service
}

func New(creditService Service) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the credit balance, today's reveal spend and the time of the last daily refresh.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credits [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Total:            balance.Total,
		DailyUsed:        balance.DailyUsed,
		DailyRemaining:   balance.DailyRemaining,
		LastDailyRefresh: balance.LastDailyRefresh,
	})
}

// GrantDaily godoc
//
//	@Summary		Claim the daily free credits
//	@Description	Grant the free daily credits, once per calendar day.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TransactionResponseDTO	"Grant transaction"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		409	{object}	utils.Response				"Already granted today"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/credits/daily [post]
func (h *CreditsHandler) GrantDaily(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txn, err := h.creditService.GrantDaily(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrAlreadyGranted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	metrics.Transactions.WithLabelValues(domain.TxTypeDailyRefresh).Inc()
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// GetHistory godoc
//
//	@Summary		Get credit transaction history
//	@Description	Full append-only ledger for the authenticated user, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/credits/history [get]
func (h *CreditsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txns, err := h.creditService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = toTransactionDTO(&txn)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Adjust godoc
//
//	@Summary		Adjust a user's credit balance
//	@Description	Credit (positive amount) or debit (negative amount) any user's ledger. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustRequestDTO		true	"Adjustment payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Adjustment transaction"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient balance for debit"
//	@Failure		403		{object}	utils.Response				"Not an admin"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/credits/adjust [post]
func (h *CreditsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be non-zero")
		return
	}

	var txn *domain.CreditTransaction
	var err error
	if req.Amount > 0 {
		txn, err = h.creditService.Credit(r.Context(), req.UserID, req.Amount, domain.TxTypeAdmin, req.Description)
	} else {
		txn, err = h.creditService.Debit(r.Context(), req.UserID, -req.Amount, domain.TxTypeAdmin, req.Description, nil)
	}
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	metrics.Transactions.WithLabelValues(domain.TxTypeAdmin).Inc()
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// Audit godoc
//
//	@Summary		Verify a user's ledger consistency
//	@Description	Re-fold the transaction log and verify every balance snapshot. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Success		200		{object}	dto.AuditResponseDTO	"Ledger is consistent"
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		403		{object}	utils.Response			"Not an admin"
//	@Failure		409		{object}	dto.AuditResponseDTO	"Ledger is inconsistent"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/credits/audit/{userID} [get]
func (h *CreditsHandler) Audit(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	err = h.creditService.Audit(r.Context(), userID)
	if err != nil {
		if errors.Is(err, creditservice.ErrInconsistentState) {
			utils.RespondWithJSON(w, http.StatusConflict, dto.AuditResponseDTO{
				UserID: userID,
				Detail: err.Error(),
			})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuditResponseDTO{
		UserID:     userID,
		Consistent: true,
	})
}

func toTransactionDTO(txn *domain.CreditTransaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:              txn.ID,
		Delta:           txn.Delta,
		BalanceAfter:    txn.BalanceAfter,
		Type:            txn.Type,
		Description:     txn.Description,
		RelatedRevealID: txn.RelatedRevealID,
		CreatedAt:       txn.CreatedAt,
	}
}
