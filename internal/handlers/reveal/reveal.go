package reveal

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
	"github.com/affilink/creditmarket/internal/service/revealservice"
	"github.com/affilink/creditmarket/pkg/auth"
	"github.com/affilink/creditmarket/pkg/metrics"
	"github.com/affilink/creditmarket/pkg/utils"
)

type Service interface {
	RequestReveal(ctx context.Context, revealerID, targetID int) (*revealservice.RevealResult, error)
	CheckRevealed(ctx context.Context, revealerID, targetID int) (bool, *domain.Contact, error)
	GetReveals(ctx context.Context, revealerID int) ([]domain.RevealRecord, error)
}

type RevealHandler struct {
	revealService Service
}

func New(revealService Service) *RevealHandler {
	return &RevealHandler{
		revealService: revealService,
	}
}

// RequestReveal godoc
//
//	@Summary		Reveal a user's contact information
//	@Description	Unlock the target's contacts for one credit. Repeating the request for the same target is free and returns the same payload.
//	@Tags			Reveals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RevealRequestDTO	true	"Reveal request payload"
//	@Success		200		{object}	dto.RevealResponseDTO	"Contact revealed"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient credits"
//	@Failure		403		{object}	utils.Response			"Denied by role policy"
//	@Failure		429		{object}	utils.Response			"Too many reveal attempts"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/reveals [post]
func (h *RevealHandler) RequestReveal(w http.ResponseWriter, r *http.Request) {
	revealerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RevealRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.revealService.RequestReveal(r.Context(), revealerID, req.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, revealservice.ErrInvalidRoles),
			errors.Is(err, revealservice.ErrSameRole),
			errors.Is(err, revealservice.ErrUnauthorized):
			metrics.Reveals.WithLabelValues("denied").Inc()
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, creditservice.ErrInsufficientCredits):
			metrics.Reveals.WithLabelValues("insufficient_credits").Inc()
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, revealservice.ErrRateLimited):
			metrics.Reveals.WithLabelValues("rate_limited").Inc()
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if result.AlreadyRevealed {
		metrics.Reveals.WithLabelValues("already_revealed").Inc()
	} else {
		metrics.Reveals.WithLabelValues("revealed").Inc()
		metrics.Transactions.WithLabelValues(domain.TxTypeReveal).Inc()
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RevealResponseDTO{
		AlreadyRevealed: result.AlreadyRevealed,
		Contact:         toContactDTO(result.Contact),
	})
}

// CheckRevealed godoc
//
//	@Summary		Check whether a contact is already revealed
//	@Description	Report the reveal state for a target; contacts come back masked until the reveal is paid for.
//	@Tags			Reveals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			targetID	path		int								true	"Target user ID"
//	@Success		200			{object}	dto.CheckRevealedResponseDTO	"Reveal state"
//	@Failure		400			{object}	utils.Response					"Invalid target id"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		404			{object}	utils.Response					"Target not found"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/user/reveals/{targetID} [get]
func (h *RevealHandler) CheckRevealed(w http.ResponseWriter, r *http.Request) {
	revealerID := r.Context().Value(auth.UserIDKey).(int)

	targetID, err := strconv.Atoi(chi.URLParam(r, "targetID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid target id")
		return
	}

	revealed, contact, err := h.revealService.CheckRevealed(r.Context(), revealerID, targetID)
	if err != nil {
		if errors.Is(err, revealservice.ErrTargetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckRevealedResponseDTO{
		Revealed: revealed,
		Contact:  toContactDTO(contact),
	})
}

// GetReveals godoc
//
//	@Summary		Get reveal history
//	@Description	List the contacts the authenticated user has revealed, newest first.
//	@Tags			Reveals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RevealRecordResponseDTO	"Reveal history"
//	@Success		204	{object}	utils.Response				"No reveals yet"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/reveals [get]
func (h *RevealHandler) GetReveals(w http.ResponseWriter, r *http.Request) {
	revealerID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.revealService.GetReveals(r.Context(), revealerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reveals")
		return
	}

	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No reveals found")
		return
	}

	response := make([]dto.RevealRecordResponseDTO, len(records))
	for i, record := range records {
		response[i] = dto.RevealRecordResponseDTO{
			ID:          record.ID,
			TargetID:    record.TargetID,
			CostCredits: record.CostCredits,
			RevealedAt:  record.RevealedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toContactDTO(contact *domain.Contact) dto.ContactDTO {
	if contact == nil {
		return dto.ContactDTO{}
	}
	return dto.ContactDTO{
		UserID:   contact.UserID,
		Email:    contact.Email,
		Phone:    contact.Phone,
		Telegram: contact.Telegram,
	}
}
