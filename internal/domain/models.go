package domain

import "time"

const (
	RoleOperator  = "operator"
	RoleAffiliate = "affiliate"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the known marketplace roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOperator, RoleAffiliate, RoleAdmin:
		return true
	}
	return false
}

const (
	TxTypePurchase     = "purchase"
	TxTypeReveal       = "reveal"
	TxTypeRefund       = "refund"
	TxTypeBonus        = "bonus"
	TxTypeDailyRefresh = "daily_refresh"
	TxTypeInitialBonus = "initial_bonus"
	TxTypeAdmin        = "admin"
)

const (
	// InitialBonus is granted lazily on a user's first debit.
	InitialBonus = 5
	// DailyLimit caps free reveal credits per calendar day and sizes the daily grant.
	DailyLimit = 5
	// RevealCost is the credit price of unmasking one contact.
	RevealCost = 1
)

type User struct {
	ID              int       `db:"id"`
	Login           string    `db:"login"`
	PasswordHash    string    `db:"password_hash"`
	Role            string    `db:"role"`
	ContactEmail    string    `db:"contact_email"`
	ContactPhone    string    `db:"contact_phone"`
	ContactTelegram string    `db:"contact_telegram"`
	CreatedAt       time.Time `db:"created_at"`
}

// CreditTransaction is one immutable entry of a user's append-only credit ledger.
// BalanceAfter snapshots the running total so reads never re-sum history.
type CreditTransaction struct {
	ID              int64     `db:"id"`
	UserID          int       `db:"user_id"`
	Delta           int       `db:"delta"`
	BalanceAfter    int       `db:"balance_after"`
	Type            string    `db:"type"`
	Description     string    `db:"description"`
	RelatedRevealID *string   `db:"related_reveal_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// Balance is the derived view of a user's ledger state.
type Balance struct {
	Total            int
	DailyUsed        int
	DailyRemaining   int
	LastDailyRefresh *time.Time
}

// RevealRecord marks that revealer has paid to see target's contacts.
// At most one record exists per (revealer, target) pair.
type RevealRecord struct {
	ID          string    `db:"id"`
	RevealerID  int       `db:"revealer_id"`
	TargetID    int       `db:"target_id"`
	CostCredits int       `db:"cost_credits"`
	RevealedAt  time.Time `db:"revealed_at"`
}

// Contact is the payload unlocked by a reveal.
type Contact struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Telegram string `json:"telegram"`
}

const (
	PurchaseStatusNew        = "NEW"
	PurchaseStatusProcessing = "PROCESSING"
	PurchaseStatusProcessed  = "PROCESSED"
	PurchaseStatusInvalid    = "INVALID"
)

// Purchase is a credit top-up paid through the external billing system.
type Purchase struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	OrderNumber string     `db:"order_number"`
	Amount      int        `db:"amount"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	SettledAt   *time.Time `db:"settled_at"`
}
