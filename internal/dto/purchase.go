package dto

import "time"

type PurchaseRequestDTO struct {
	Order  string `json:"order" example:"2377225624"`
	Amount int    `json:"amount" example:"50"`
}

type PurchaseResponseDTO struct {
	ID        int        `json:"id"`
	Order     string     `json:"order"`
	Amount    int        `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}
