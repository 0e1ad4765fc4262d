package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

type PurchaseHandler struct {
	checkout *service.CheckoutSvc
	confirm  *service.ConfirmSvc
	origin   string
}

func NewPurchaseHandler(checkout *service.CheckoutSvc, confirm *service.ConfirmSvc, defaultOrigin string) *PurchaseHandler {
	return &PurchaseHandler{checkout: checkout, confirm: confirm, origin: defaultOrigin}
}

type purchaseBody struct {
	CourseID string `json:"course_id" binding:"required"`
}

// POST /v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var body purchaseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = h.origin
	}
	url, err := h.checkout.Start(c.Request.Context(), actorID(c), body.CourseID, origin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"redirect_url": url})
}

type confirmBody struct {
	SessionRef string `json:"session_ref" binding:"required"`
}

// POST /v1/purchases/confirm
func (h *PurchaseHandler) Confirm(c *gin.Context) {
	var body confirmBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := h.confirm.Confirm(c.Request.Context(), actorID(c), body.SessionRef)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
