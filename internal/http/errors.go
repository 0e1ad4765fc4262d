package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/repository"
	"github.com/Riyanshu-256/lms-elearning-platform/internal/service"
)

// writeError maps service and repository sentinels onto the API's
// status codes. Unknown errors become a generic 500; those are safe to
// retry because every state change funnels through the idempotent
// purchase transition.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrCourseNotFound),
		errors.Is(err, repository.ErrPurchaseNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateSession),
		errors.Is(err, repository.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrAlreadyRated):
		c.JSON(http.StatusConflict, gin.H{"error": "course already rated"})
	case errors.Is(err, service.ErrNotEnrolled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not enrolled in this course"})
	case errors.Is(err, service.ErrUnknownLecture):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "lecture does not belong to this course"})
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "rating must be between 1 and 5"})
	case errors.Is(err, service.ErrInvalidDiscount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "discount must be between 0 and 100"})
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid role"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your purchase"})
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable, retry shortly"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
