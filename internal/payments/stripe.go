package payments

import (
	"context"
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Provider event kinds handled by the reconciler.
const (
	EventSessionCompleted     = "checkout.session.completed"
	EventSessionPaymentFailed = "checkout.session.async_payment_failed"
	EventSessionExpired       = "checkout.session.expired"
)

type Status string

const (
	StatusPaid              Status = "paid"
	StatusUnpaid            Status = "unpaid"
	StatusNoPaymentRequired Status = "no_payment_required"
)

type SessionInput struct {
	UserID      string
	CourseID    string
	CourseTitle string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

type Session struct {
	ID  string
	URL string
}

// Event is a verified webhook notification. SessionRef is filled for
// checkout-session events.
type Event struct {
	ID         string
	Type       string
	SessionRef string
}

// Client wraps the Stripe SDK for the three calls the engine needs:
// open a hosted checkout session, poll its payment status, and verify
// an inbound webhook against the raw body.
type Client struct {
	api           *client.API
	webhookSecret string
}

func NewClient(secretKey, webhookSecret string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, webhookSecret: webhookSecret}
}

func (c *Client) CreateSession(ctx context.Context, in SessionInput) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(in.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(in.CourseTitle),
				},
				UnitAmount: stripe.Int64(in.AmountCents),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("user_id", in.UserID)
	params.AddMetadata("course_id", in.CourseID)

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, fmt.Errorf("create checkout session: %w", err)
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

func (c *Client) SessionStatus(ctx context.Context, sessionRef string) (Status, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := c.api.CheckoutSessions.Get(sessionRef, params)
	if err != nil {
		return "", fmt.Errorf("retrieve checkout session: %w", err)
	}
	return Status(s.PaymentStatus), nil
}

// VerifyEvent checks the Stripe-Signature header over the exact raw
// payload bytes. The body must not be parsed before this call.
func (c *Client) VerifyEvent(payload []byte, sigHeader string) (Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, sigHeader, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, err
	}
	out := Event{ID: ev.ID, Type: string(ev.Type)}
	switch out.Type {
	case EventSessionCompleted, EventSessionPaymentFailed, EventSessionExpired:
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &cs); err != nil {
			return Event{}, fmt.Errorf("decode session payload: %w", err)
		}
		out.SessionRef = cs.ID
	}
	return out, nil
}
