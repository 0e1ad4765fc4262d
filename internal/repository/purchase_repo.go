package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
)

var (
	ErrDuplicateSession = errors.New("duplicate_session")
	ErrPurchaseNotFound = errors.New("purchase_not_found")
)

type PurchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepo(db *gorm.DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

func (r *PurchaseRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Purchase{}, &domain.WebhookEvent{})
}

// Create persists a new pending purchase. The unique index on
// session_ref rejects a second purchase for the same checkout session.
func (r *PurchaseRepo) Create(ctx context.Context, p *domain.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.PurchasePending
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSession
		}
		return err
	}
	return nil
}

func (r *PurchaseRepo) BySessionRef(ctx context.Context, ref string) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := r.db.WithContext(ctx).First(&p, "session_ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return &p, nil
}

// TryTransition moves the purchase out of pending with one conditional
// UPDATE, so concurrent callers racing on the same session cannot both
// win. The returned flag is true only when this call performed the
// transition; false with a nil error means the record was already
// terminal and the caller must not run side effects.
func (r *PurchaseRepo) TryTransition(ctx context.Context, sessionRef string, to domain.PurchaseStatus) (bool, error) {
	if !to.Terminal() {
		return false, fmt.Errorf("invalid transition target %q", to)
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Purchase{}).
		Where("session_ref = ? AND status = ?", sessionRef, domain.PurchasePending).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	// No row changed: either the purchase is unknown or already terminal.
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Purchase{}).
		Where("session_ref = ?", sessionRef).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n == 0 {
		return false, ErrPurchaseNotFound
	}
	return false, nil
}

// RecordWebhookEvent keeps an audit row per provider event id.
// Redelivered ids are ignored.
func (r *PurchaseRepo) RecordWebhookEvent(ctx context.Context, id, eventType, sessionRef string) error {
	ev := domain.WebhookEvent{
		ID:          id,
		EventType:   eventType,
		SessionRef:  sessionRef,
		ProcessedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}
