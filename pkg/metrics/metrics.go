package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reconciliation counts the outcomes of the purchase reconciliation
// engine across both the webhook and the client-poll paths.
type Reconciliation struct {
	WebhookEvents    *prometheus.CounterVec // label: event type
	Transitions      *prometheus.CounterVec // labels: target status, applied
	Enrollments      prometheus.Counter
	SignatureRejects prometheus.Counter
}

func NewReconciliation(reg prometheus.Registerer) *Reconciliation {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Reconciliation{
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "learnhub",
			Subsystem: "reconcile",
			Name:      "webhook_events_total",
			Help:      "Payment webhook events received, by type.",
		}, []string{"type"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "learnhub",
			Subsystem: "reconcile",
			Name:      "purchase_transitions_total",
			Help:      "Attempted purchase transitions, by target and whether this caller applied it.",
		}, []string{"target", "applied"}),
		Enrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "learnhub",
			Subsystem: "reconcile",
			Name:      "enrollments_total",
			Help:      "Enrollment projections performed.",
		}),
		SignatureRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "learnhub",
			Subsystem: "reconcile",
			Name:      "webhook_signature_rejects_total",
			Help:      "Webhook deliveries rejected for an invalid signature.",
		}),
	}
	reg.MustRegister(m.WebhookEvents, m.Transitions, m.Enrollments, m.SignatureRejects)
	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}
