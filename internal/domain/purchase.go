package domain

import "time"

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseFailed    PurchaseStatus = "failed"
)

// Terminal reports whether no further transition is permitted.
func (s PurchaseStatus) Terminal() bool {
	return s == PurchaseCompleted || s == PurchaseFailed
}

// Purchase is the durable record of one checkout attempt. SessionRef is
// the idempotency key correlating it to exactly one checkout session.
type Purchase struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	CourseID    string `gorm:"index"`
	AmountCents int64
	Currency    string
	Status      PurchaseStatus `gorm:"index"`
	SessionRef  string         `gorm:"uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WebhookEvent records a processed provider event id so redeliveries can
// be traced; correctness does not depend on it.
type WebhookEvent struct {
	ID          string `gorm:"primaryKey"` // provider event id
	EventType   string `gorm:"index"`
	SessionRef  string `gorm:"index"`
	ProcessedAt time.Time
}
