package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKPurchaseCreated   = "purchase.created"
	RKPurchaseCompleted = "purchase.completed"
	RKPurchaseFailed    = "purchase.failed"
	RKEnrollmentCreated = "enrollment.created"
)

type PurchaseCreated struct {
	PurchaseID  string `json:"purchase_id"`
	UserID      string `json:"user_id"`
	CourseID    string `json:"course_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	SessionRef  string `json:"session_ref"`
}

type PurchaseTerminal struct {
	SessionRef string `json:"session_ref"`
	UserID     string `json:"user_id"`
	CourseID   string `json:"course_id"`
	Status     string `json:"status"`
	Source     string `json:"source"` // webhook | poll
}

type EnrollmentCreated struct {
	UserID   string `json:"user_id"`
	CourseID string `json:"course_id"`
}

func Decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
