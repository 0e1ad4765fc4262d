package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/metrics"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

// ReconcileSvc advances purchases from verified payment-processor
// notifications. Delivery is at-least-once and may race the client
// poll path; both funnel through the same conditional transition.
type ReconcileSvc struct {
	purchases *repository.PurchaseRepo
	enroll    *EnrollmentSvc
	pub       *mq.Publisher
	met       *metrics.Reconciliation
}

func NewReconcileSvc(p *repository.PurchaseRepo, e *EnrollmentSvc, pub *mq.Publisher, met *metrics.Reconciliation) *ReconcileSvc {
	return &ReconcileSvc{purchases: p, enroll: e, pub: pub, met: met}
}

// HandleEvent processes one verified event. A nil return means the
// delivery is settled; an error tells the transport to answer 5xx so
// the processor redelivers (safe: the transition is idempotent).
func (s *ReconcileSvc) HandleEvent(ctx context.Context, ev payments.Event) error {
	if s.met != nil {
		s.met.WebhookEvents.WithLabelValues(ev.Type).Inc()
	}
	switch ev.Type {
	case payments.EventSessionCompleted:
		return s.transition(ctx, ev, domain.PurchaseCompleted)
	case payments.EventSessionPaymentFailed, payments.EventSessionExpired:
		// expiry is treated as a failed checkout so pending rows do not
		// linger forever
		return s.transition(ctx, ev, domain.PurchaseFailed)
	default:
		log.Printf("[reconcile] skip event type=%s", ev.Type)
		return nil
	}
}

func (s *ReconcileSvc) transition(ctx context.Context, ev payments.Event, to domain.PurchaseStatus) error {
	applied, err := s.purchases.TryTransition(ctx, ev.SessionRef, to)
	if errors.Is(err, repository.ErrPurchaseNotFound) {
		// foreign or pre-deployment session; keep the audit row, these
		// are the deliveries someone will want to trace later
		log.Printf("[reconcile] unknown session_ref=%s event=%s", ev.SessionRef, ev.ID)
		s.recordEvent(ctx, ev)
		return nil
	}
	if err != nil {
		return err
	}
	if s.met != nil {
		s.met.Transitions.WithLabelValues(string(to), strconv.FormatBool(applied)).Inc()
	}

	if applied {
		p, err := s.purchases.BySessionRef(ctx, ev.SessionRef)
		if err != nil {
			return err
		}
		if to == domain.PurchaseCompleted {
			if err := s.enroll.Project(ctx, p.UserID, p.CourseID); err != nil {
				return err
			}
			if s.met != nil {
				s.met.Enrollments.Inc()
			}
		}
		rk := events.RKPurchaseCompleted
		if to == domain.PurchaseFailed {
			rk = events.RKPurchaseFailed
		}
		_ = s.pub.PublishJSON(ctx, rk, events.PurchaseTerminal{
			SessionRef: p.SessionRef,
			UserID:     p.UserID,
			CourseID:   p.CourseID,
			Status:     string(to),
			Source:     "webhook",
		})
	}

	s.recordEvent(ctx, ev)
	return nil
}

func (s *ReconcileSvc) recordEvent(ctx context.Context, ev payments.Event) {
	if err := s.purchases.RecordWebhookEvent(ctx, ev.ID, ev.Type, ev.SessionRef); err != nil {
		log.Printf("[reconcile] record event %s: %v", ev.ID, err)
	}
}
