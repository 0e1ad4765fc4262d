package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpx "github.com/Riyanshu-256/lms-elearning-platform/internal/http"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/auth"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/cache"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/config"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/db"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/metrics"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/mq"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdown := obs.InitTracer("learnhub-api")
	defer func() { _ = shutdown(context.Background()) }()

	gdb := db.Open(cfg.PostgresDSN)
	courseCache := cache.New(cfg.RedisAddr, time.Duration(cfg.CacheTTLSec)*time.Second)
	defer courseCache.Close()

	users := repository.NewUserRepo(gdb)
	courses := repository.NewCourseRepo(gdb, courseCache)
	purchases := repository.NewPurchaseRepo(gdb)
	enrollments := repository.NewEnrollmentRepo(gdb)
	progress := repository.NewProgressRepo(gdb)
	ratings := repository.NewRatingRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, courses, purchases, enrollments, progress, ratings} {
		must(0, m.Migrate())
	}

	var pub *mq.Publisher
	if cfg.RabbitURL != "" {
		pub = must(mq.NewPublisher(cfg.RabbitURL, cfg.LearnhubExchange))
		defer pub.Close()
	}

	met := metrics.NewReconciliation(nil)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	stripeClient := payments.NewClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	enrollSvc := service.NewEnrollmentSvc(enrollments, ratings, courses, users, pub)
	checkoutSvc := service.NewCheckoutSvc(courses, purchases, stripeClient, pub, cfg.Currency)
	reconcileSvc := service.NewReconcileSvc(purchases, enrollSvc, pub, met)
	confirmSvc := service.NewConfirmSvc(purchases, enrollSvc, stripeClient, pub, met)
	progressSvc := service.NewProgressSvc(courses, enrollments, progress)
	ratingSvc := service.NewRatingSvc(courses, enrollments, ratings)
	authSvc := service.NewAuthSvc(users, issuer)
	courseSvc := service.NewCourseSvc(courses)

	r := httpx.NewRouter(issuer, httpx.Handlers{
		Auth:     httpx.NewAuthHandler(authSvc),
		Course:   httpx.NewCourseHandler(courseSvc, enrollSvc),
		Purchase: httpx.NewPurchaseHandler(checkoutSvc, confirmSvc, cfg.ClientOrigin),
		Progress: httpx.NewProgressHandler(progressSvc, ratingSvc),
		Webhook:  httpx.NewWebhookHandler(stripeClient, reconcileSvc, met),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Println("[api] stopped")
}
