package service

import (
	"context"
	"fmt"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

// PaymentProvider is the outbound surface of the payment processor used
// by the checkout and confirmation paths.
type PaymentProvider interface {
	CreateSession(ctx context.Context, in payments.SessionInput) (payments.Session, error)
	SessionStatus(ctx context.Context, sessionRef string) (payments.Status, error)
}

type CheckoutSvc struct {
	courses   *repository.CourseRepo
	purchases *repository.PurchaseRepo
	provider  PaymentProvider
	pub       *mq.Publisher
	currency  string
}

func NewCheckoutSvc(c *repository.CourseRepo, p *repository.PurchaseRepo, provider PaymentProvider, pub *mq.Publisher, currency string) *CheckoutSvc {
	return &CheckoutSvc{courses: c, purchases: p, provider: provider, pub: pub, currency: currency}
}

// Start prices the course, opens a hosted checkout session and persists
// exactly one pending purchase keyed by the session id. It never
// enrolls; that happens only after a confirmed payment.
func (s *CheckoutSvc) Start(ctx context.Context, userID, courseID, origin string) (redirectURL string, err error) {
	course, err := s.courses.ByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	if !course.Published {
		return "", repository.ErrCourseNotFound
	}

	currency := course.Currency
	if currency == "" {
		currency = s.currency
	}
	amount := course.FinalPriceCents()

	sess, err := s.provider.CreateSession(ctx, payments.SessionInput{
		UserID:      userID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		AmountCents: amount,
		Currency:    currency,
		SuccessURL:  origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/payment-cancel",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	p := &domain.Purchase{
		UserID:      userID,
		CourseID:    course.ID,
		AmountCents: amount,
		Currency:    currency,
		SessionRef:  sess.ID,
	}
	if err := s.purchases.Create(ctx, p); err != nil {
		return "", err
	}

	_ = s.pub.PublishJSON(ctx, events.RKPurchaseCreated, events.PurchaseCreated{
		PurchaseID:  p.ID,
		UserID:      p.UserID,
		CourseID:    p.CourseID,
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		SessionRef:  p.SessionRef,
	})
	return sess.URL, nil
}
