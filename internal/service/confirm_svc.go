package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/metrics"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

// ConfirmSvc is the client-triggered confirmation path, used when the
// caller cannot wait for webhook delivery. Safe to run any number of
// times concurrently with the reconciler.
type ConfirmSvc struct {
	purchases *repository.PurchaseRepo
	enroll    *EnrollmentSvc
	provider  PaymentProvider
	pub       *mq.Publisher
	met       *metrics.Reconciliation
}

func NewConfirmSvc(p *repository.PurchaseRepo, e *EnrollmentSvc, provider PaymentProvider, pub *mq.Publisher, met *metrics.Reconciliation) *ConfirmSvc {
	return &ConfirmSvc{purchases: p, enroll: e, provider: provider, pub: pub, met: met}
}

// Confirm polls the processor for the session's live status. Only the
// purchase's own user may confirm it. "pending" is a try-again-shortly
// answer, not an error.
func (s *ConfirmSvc) Confirm(ctx context.Context, actorID, sessionRef string) (domain.PurchaseStatus, error) {
	p, err := s.purchases.BySessionRef(ctx, sessionRef)
	if err != nil {
		return "", err
	}
	if p.UserID != actorID {
		return "", ErrForbidden
	}
	if p.Status.Terminal() {
		// reconciler already won; the desired end state holds
		return p.Status, nil
	}

	st, err := s.provider.SessionStatus(ctx, sessionRef)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if st != payments.StatusPaid {
		return domain.PurchasePending, nil
	}

	applied, err := s.purchases.TryTransition(ctx, sessionRef, domain.PurchaseCompleted)
	if err != nil {
		return "", err
	}
	if s.met != nil {
		s.met.Transitions.WithLabelValues(string(domain.PurchaseCompleted), strconv.FormatBool(applied)).Inc()
	}
	if applied {
		if err := s.enroll.Project(ctx, p.UserID, p.CourseID); err != nil {
			return "", err
		}
		if s.met != nil {
			s.met.Enrollments.Inc()
		}
		_ = s.pub.PublishJSON(ctx, events.RKPurchaseCompleted, events.PurchaseTerminal{
			SessionRef: sessionRef,
			UserID:     p.UserID,
			CourseID:   p.CourseID,
			Status:     string(domain.PurchaseCompleted),
			Source:     "poll",
		})
		return domain.PurchaseCompleted, nil
	}

	// Lost the race against the reconciler. The winner is not always a
	// completion (the processor can push a failure for the same
	// session), so report whatever state actually won.
	cur, err := s.purchases.BySessionRef(ctx, sessionRef)
	if err != nil {
		return "", err
	}
	return cur.Status, nil
}
