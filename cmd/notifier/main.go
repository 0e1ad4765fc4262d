package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/events"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/notifier"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/config"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.LoadNotifier())

	keys := []string{
		events.RKPurchaseCreated,
		events.RKPurchaseCompleted,
		events.RKPurchaseFailed,
		events.RKEnrollmentCreated,
	}
	cons := must(mq.NewConsumer(cfg.RabbitURL, cfg.LearnhubExchange, cfg.NotifierQueue, keys, cfg.Prefetch))
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := notifier.NewWorker(cons, notifier.NewConsole())
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Fatalf("[notify] worker: %v", err)
		}
	}()
	log.Println("[notify] consuming", keys)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	log.Println("[notify] stopped")
}
