package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/payments"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/testutil"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/auth"
)

type fakeProvider struct {
	session   payments.Session
	createErr error
	status    payments.Status
	statusErr error
	onStatus  func() // runs before every SessionStatus answer
}

func (f *fakeProvider) CreateSession(ctx context.Context, in payments.SessionInput) (payments.Session, error) {
	if f.createErr != nil {
		return payments.Session{}, f.createErr
	}
	return f.session, nil
}

func (f *fakeProvider) SessionStatus(ctx context.Context, sessionRef string) (payments.Status, error) {
	if f.onStatus != nil {
		f.onStatus()
	}
	if f.statusErr != nil {
		return "", f.statusErr
	}
	return f.status, nil
}

// env bundles the engine over one database, the way cmd/api wires it.
type env struct {
	db          *gorm.DB
	courses     *repository.CourseRepo
	purchases   *repository.PurchaseRepo
	enrollments *repository.EnrollmentRepo
	progress    *repository.ProgressRepo
	ratings     *repository.RatingRepo
	users       *repository.UserRepo
	provider    *fakeProvider

	enroll    *service.EnrollmentSvc
	checkout  *service.CheckoutSvc
	reconcile *service.ReconcileSvc
	confirm   *service.ConfirmSvc
	progSvc   *service.ProgressSvc
	rateSvc   *service.RatingSvc
	courseSvc *service.CourseSvc
	authSvc   *service.AuthSvc
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gdb := testutil.OpenDB(t)
	e := &env{
		db:          gdb,
		courses:     repository.NewCourseRepo(gdb, nil),
		purchases:   repository.NewPurchaseRepo(gdb),
		enrollments: repository.NewEnrollmentRepo(gdb),
		progress:    repository.NewProgressRepo(gdb),
		ratings:     repository.NewRatingRepo(gdb),
		users:       repository.NewUserRepo(gdb),
		provider:    &fakeProvider{session: payments.Session{ID: "cs_test", URL: "https://pay.example/cs_test"}, status: payments.StatusPaid},
	}
	e.enroll = service.NewEnrollmentSvc(e.enrollments, e.ratings, e.courses, e.users, nil)
	e.checkout = service.NewCheckoutSvc(e.courses, e.purchases, e.provider, nil, "usd")
	e.reconcile = service.NewReconcileSvc(e.purchases, e.enroll, nil, nil)
	e.confirm = service.NewConfirmSvc(e.purchases, e.enroll, e.provider, nil, nil)
	e.progSvc = service.NewProgressSvc(e.courses, e.enrollments, e.progress)
	e.rateSvc = service.NewRatingSvc(e.courses, e.enrollments, e.ratings)
	e.courseSvc = service.NewCourseSvc(e.courses)
	e.authSvc = service.NewAuthSvc(e.users, auth.NewTokenIssuer("test-secret", time.Minute))
	return e
}

// seedCourse inserts a published course with n lectures in one chapter.
func (e *env) seedCourse(t *testing.T, id string, priceCents int64, discount, lectures int) *domain.Course {
	t.Helper()
	var lecs []domain.Lecture
	for i := 1; i <= lectures; i++ {
		lecs = append(lecs, domain.Lecture{LectureID: fmt.Sprintf("lec-%d", i), Title: fmt.Sprintf("Lecture %d", i), Order: i})
	}
	c := &domain.Course{
		ID:         id,
		Title:      "Course " + id,
		PriceCents: priceCents,
		Currency:   "usd",
		Discount:   discount,
		Published:  true,
		Content:    []domain.Chapter{{ChapterID: "ch-1", Title: "Chapter 1", Order: 1, Lectures: lecs}},
	}
	if err := e.db.Create(c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func (e *env) seedPendingPurchase(t *testing.T, userID, courseID, ref string) *domain.Purchase {
	t.Helper()
	p := &domain.Purchase{UserID: userID, CourseID: courseID, AmountCents: 8000, Currency: "usd", SessionRef: ref}
	if err := e.purchases.Create(context.Background(), p); err != nil {
		t.Fatalf("seed purchase: %v", err)
	}
	return p
}

func (e *env) mustEnroll(t *testing.T, userID, courseID string) {
	t.Helper()
	if err := e.enroll.Project(context.Background(), userID, courseID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
}

func completedEvent(id, ref string) payments.Event {
	return payments.Event{ID: id, Type: payments.EventSessionCompleted, SessionRef: ref}
}
