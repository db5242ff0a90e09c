package dto

import "time"

type BalanceResponseDTO struct {
	Total            int        `json:"total" example:"9"`
	DailyUsed        int        `json:"daily_used" example:"1"`
	DailyRemaining   int        `json:"daily_remaining" example:"4"`
	LastDailyRefresh *time.Time `json:"last_daily_refresh,omitempty"`
}

type TransactionResponseDTO struct {
	ID              int64     `json:"id" example:"42"`
	Delta           int       `json:"delta" example:"-1"`
	BalanceAfter    int       `json:"balance_after" example:"8"`
	Type            string    `json:"type" example:"reveal"`
	Description     string    `json:"description" example:"contact reveal for user 7"`
	RelatedRevealID *string   `json:"related_reveal_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdjustRequestDTO struct {
	UserID      int    `json:"user_id" validate:"required" example:"7"`
	Amount      int    `json:"amount" validate:"required" example:"10"`
	Description string `json:"description" example:"goodwill credit"`
}

type AuditResponseDTO struct {
	UserID     int    `json:"user_id"`
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}
