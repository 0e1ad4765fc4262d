package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler { return &AuthHandler{svc: svc} }

type registerBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"` // LEARNER (default) or EDUCATOR
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, token, err := h.svc.Register(c.Request.Context(), body.Email, body.Password, body.Name, domain.Role(body.Role))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":  gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
		"token": token,
	})
}

// POST /v1/users/me/educator
func (h *AuthHandler) BecomeEducator(c *gin.Context) {
	u, token, err := h.svc.BecomeEducator(c.Request.Context(), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
		"token": token,
	})
}

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
		"token": token,
	})
}
