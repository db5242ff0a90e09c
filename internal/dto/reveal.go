package dto

import "time"

type RevealRequestDTO struct {
	TargetID int `json:"target_id" validate:"required" example:"7"`
}

type ContactDTO struct {
	UserID   int    `json:"user_id" example:"7"`
	Email    string `json:"email" example:"partner@example.com"`
	Phone    string `json:"phone" example:"+35799123456"`
	Telegram string `json:"telegram" example:"@partner"`
}

type RevealResponseDTO struct {
	AlreadyRevealed bool       `json:"already_revealed"`
	Contact         ContactDTO `json:"contact"`
}

type CheckRevealedResponseDTO struct {
	Revealed bool       `json:"revealed"`
	Contact  ContactDTO `json:"contact"`
}

type RevealRecordResponseDTO struct {
	ID          string    `json:"id"`
	TargetID    int       `json:"target_id"`
	CostCredits int       `json:"cost_credits"`
	RevealedAt  time.Time `json:"revealed_at"`
}
