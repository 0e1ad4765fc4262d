package notifier

import "log"

// Notifier is the delivery mechanism (console for now; email/push later).
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier { return &ConsoleNotifier{} }

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}
