package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/dto"
	"github.com/affilink/creditmarket/internal/service/purchaseservice"
	"github.com/affilink/creditmarket/pkg/auth"
	"github.com/affilink/creditmarket/pkg/utils"
	"github.com/affilink/creditmarket/pkg/validate"
)

type Service interface {
	CreatePurchase(ctx context.Context, userID int, orderNumber string, amount int) (*domain.Purchase, error)
	GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// CreatePurchase godoc
//
//	@Summary		Order a credit top-up
//	@Description	Register a pending credit purchase by payment order number. Credits land after the billing system confirms the payment.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		202		{object}	dto.PurchaseResponseDTO	"Purchase accepted"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		409		{object}	utils.Response			"Order number already used"
//	@Failure		422		{object}	utils.Response			"Invalid payment order number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credits/purchase [post]
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	if ok := validate.IsPaymentOrder(req.Order); !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment order number")
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(r.Context(), userID, req.Order, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrPurchaseAlreadyExistsByUser),
			errors.Is(err, purchaseservice.ErrPurchaseAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toPurchaseDTO(purchase))
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	List the authenticated user's credit purchases, newest first.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseResponseDTO	"Purchase history"
//	@Success		204	{object}	utils.Response			"No purchases"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credits/purchases [get]
func (h *PurchaseHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.purchaseService.GetPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}

	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No purchases found")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(purchases))
	for i, purchase := range purchases {
		response[i] = toPurchaseDTO(&purchase)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPurchaseDTO(purchase *domain.Purchase) dto.PurchaseResponseDTO {
	return dto.PurchaseResponseDTO{
		ID:        purchase.ID,
		Order:     purchase.OrderNumber,
		Amount:    purchase.Amount,
		Status:    purchase.Status,
		CreatedAt: purchase.CreatedAt,
		SettledAt: purchase.SettledAt,
	}
}
