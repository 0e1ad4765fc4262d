package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/metrics"
)

// EventVerifier authenticates a webhook delivery against its raw body.
type EventVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (payments.Event, error)
}

type WebhookHandler struct {
	verifier EventVerifier
	svc      *service.ReconcileSvc
	met      *metrics.Reconciliation
}

func NewWebhookHandler(v EventVerifier, svc *service.ReconcileSvc, met *metrics.Reconciliation) *WebhookHandler {
	return &WebhookHandler{verifier: v, svc: svc, met: met}
}

// Handle consumes one payment-processor delivery. The raw body is read
// before any parsing so the signature covers the exact bytes sent.
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	ev, err := h.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		// tampered or replayed delivery; nothing was mutated
		if h.met != nil {
			h.met.SignatureRejects.Inc()
		}
		log.Printf("[webhook] signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}
	if err := h.svc.HandleEvent(c.Request.Context(), ev); err != nil {
		// 5xx so the processor's retry policy redelivers
		log.Printf("[webhook] event %s: %v", ev.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
