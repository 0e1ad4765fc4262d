package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

func TestCheckoutAppliesDiscount(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 20, 3) // 100.00 at 20% off

	url, err := e.checkout.Start(ctx, "user-1", "course-1", "https://app.example")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if url != "https://pay.example/cs_test" {
		t.Fatalf("redirect url = %q", url)
	}

	p, err := e.purchases.BySessionRef(ctx, "cs_test")
	if err != nil {
		t.Fatal(err)
	}
	if p.AmountCents != 8000 {
		t.Fatalf("amount = %d cents, want 8000", p.AmountCents)
	}
	if p.Status != domain.PurchasePending {
		t.Fatalf("status = %q, want pending", p.Status)
	}
	if p.UserID != "user-1" || p.CourseID != "course-1" {
		t.Fatalf("purchase keys = (%s, %s)", p.UserID, p.CourseID)
	}
}

func TestCheckoutDiscountBounds(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{"no discount", 10000, 0, 10000},
		{"full discount", 10000, 100, 0},
		{"rounds down", 999, 33, 670}, // 999 - 329
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &domain.Course{PriceCents: tt.price, Discount: tt.discount}
			if got := c.FinalPriceCents(); got != tt.want {
				t.Fatalf("FinalPriceCents() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckoutUnknownCourse(t *testing.T) {
	e := newEnv(t)
	_, err := e.checkout.Start(context.Background(), "user-1", "course-missing", "https://app.example")
	if !errors.Is(err, repository.ErrCourseNotFound) {
		t.Fatalf("want ErrCourseNotFound, got %v", err)
	}
}

func TestCheckoutUnpublishedCourse(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.seedCourse(t, "course-1", 10000, 0, 3)
	if err := e.db.Model(c).Update("published", false).Error; err != nil {
		t.Fatal(err)
	}

	_, err := e.checkout.Start(ctx, "user-1", "course-1", "https://app.example")
	if !errors.Is(err, repository.ErrCourseNotFound) {
		t.Fatalf("want ErrCourseNotFound for unpublished course, got %v", err)
	}
}

func TestCheckoutUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)
	e.provider.createErr = errors.New("processor down")

	_, err := e.checkout.Start(ctx, "user-1", "course-1", "https://app.example")
	if !errors.Is(err, service.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}

	var n int64
	e.db.Model(&domain.Purchase{}).Count(&n)
	if n != 0 {
		t.Fatalf("purchase persisted despite failed session open: %d rows", n)
	}
}

func TestCheckoutDuplicateSessionRef(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedCourse(t, "course-1", 10000, 0, 3)

	if _, err := e.checkout.Start(ctx, "user-1", "course-1", "https://app.example"); err != nil {
		t.Fatal(err)
	}
	// fake provider hands out the same session id again
	_, err := e.checkout.Start(ctx, "user-1", "course-1", "https://app.example")
	if !errors.Is(err, repository.ErrDuplicateSession) {
		t.Fatalf("want ErrDuplicateSession, got %v", err)
	}
}
