package notifier

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

// Worker consumes purchase and enrollment events and turns them into
// notifications. Unhandleable payloads are dropped; transient handler
// errors requeue the delivery.
type Worker struct {
	cons *mq.Consumer
	n    Notifier
}

func NewWorker(cons *mq.Consumer, n Notifier) *Worker {
	return &Worker{cons: cons, n: n}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(d); err != nil {
				log.Printf("[notify] handle key=%s err=%v, requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKPurchaseCreated:
		ev, err := events.Decode[events.PurchaseCreated](d.Body)
		if err != nil {
			log.Printf("[notify] bad payload key=%s: %v", d.RoutingKey, err)
			return nil
		}
		return w.n.Notify("Checkout started",
			fmt.Sprintf("User %s started checkout for course %s (%d %s).", ev.UserID, ev.CourseID, ev.AmountCents, ev.Currency))

	case events.RKPurchaseCompleted:
		ev, err := events.Decode[events.PurchaseTerminal](d.Body)
		if err != nil {
			log.Printf("[notify] bad payload key=%s: %v", d.RoutingKey, err)
			return nil
		}
		return w.n.Notify("Payment confirmed",
			fmt.Sprintf("Purchase %s completed via %s for user %s.", ev.SessionRef, ev.Source, ev.UserID))

	case events.RKPurchaseFailed:
		ev, err := events.Decode[events.PurchaseTerminal](d.Body)
		if err != nil {
			log.Printf("[notify] bad payload key=%s: %v", d.RoutingKey, err)
			return nil
		}
		return w.n.Notify("Payment failed",
			fmt.Sprintf("Purchase %s failed for user %s.", ev.SessionRef, ev.UserID))

	case events.RKEnrollmentCreated:
		ev, err := events.Decode[events.EnrollmentCreated](d.Body)
		if err != nil {
			log.Printf("[notify] bad payload key=%s: %v", d.RoutingKey, err)
			return nil
		}
		return w.n.Notify("Enrollment",
			fmt.Sprintf("User %s is now enrolled in course %s.", ev.UserID, ev.CourseID))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
		return nil
	}
}
