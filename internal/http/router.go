package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/pkg/auth"
	"github.com/Riyanshu-256/lms-elearning-platform/pkg/metrics"
)

type Handlers struct {
	Auth     *AuthHandler
	Course   *CourseHandler
	Purchase *PurchaseHandler
	Progress *ProgressHandler
	Webhook  *WebhookHandler
}

// NewRouter mounts the API. The payment webhook sits outside the JWT
// group: it is authenticated by its signature, not by a bearer token.
func NewRouter(issuer *auth.TokenIssuer, h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/webhooks/payment", h.Webhook.Handle)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", h.Auth.Register)
		v1.POST("/auth/login", h.Auth.Login)

		v1.GET("/courses", h.Course.List)
		v1.GET("/courses/:id", h.Course.Get)

		secured := v1.Group("")
		secured.Use(JWTAuth(issuer))
		{
			secured.POST("/purchases", h.Purchase.Create)
			secured.POST("/purchases/confirm", h.Purchase.Confirm)

			secured.POST("/progress/lecture", h.Progress.MarkLecture)
			secured.GET("/progress/:courseId", h.Progress.Get)

			secured.POST("/ratings", h.Progress.Rate)

			secured.GET("/courses/:id/status", h.Course.Status)
			secured.GET("/users/me/courses", h.Course.Enrolled)
			secured.POST("/users/me/educator", h.Auth.BecomeEducator)

			educator := secured.Group("")
			educator.Use(RequireRole("EDUCATOR"))
			educator.POST("/courses", h.Course.Create)
			educator.GET("/educators/me/courses", h.Course.Mine)
			educator.GET("/courses/:id/students", h.Course.Students)
		}
	}
	return r
}
