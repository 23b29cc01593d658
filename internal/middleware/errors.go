package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub-dev/userhub/internal/apperrors"
)

// ErrorResponse is the boundary error body. Details is only present for
// multi-field validation failures.
type ErrorResponse struct {
	Timestamp string   `json:"timestamp"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Path      string   `json:"path"`
	Details   []string `json:"details,omitempty"`
}

// ErrorHandler translates domain errors pushed by handlers via ctx.Error
// into status-coded responses. Handlers never write error bodies themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		last := ctx.Errors.Last()

		if last == nil {
			return
		}

		status, label, details := classify(last.Err)

		if status == http.StatusInternalServerError {
			log.Printf("Unexpected error on %s: %v", ctx.Request.URL.Path, last.Err)
		}

		ctx.JSON(status, ErrorResponse{
			Timestamp: time.Now().Format(time.RFC3339),
			Status:    status,
			Error:     label,
			Message:   last.Err.Error(),
			Path:      ctx.Request.URL.Path,
			Details:   details,
		})
	}
}

func classify(err error) (int, string, []string) {
	var (
		userNotFound     *apperrors.UserNotFoundError
		projectNotFound  *apperrors.ExternalProjectNotFoundError
		userConflict     *apperrors.UserAlreadyExistsError
		projectConflict  *apperrors.ExternalProjectAlreadyExistsError
		unauthorized     *apperrors.UnauthorizedError
		validationFailed *apperrors.ValidationError
	)

	switch {
	case errors.As(err, &userNotFound), errors.As(err, &projectNotFound):
		return http.StatusNotFound, "Not Found", nil
	case errors.As(err, &userConflict), errors.As(err, &projectConflict):
		return http.StatusConflict, "Conflict", nil
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized, "Unauthorized", nil
	case errors.As(err, &validationFailed):
		return http.StatusBadRequest, "Validation Failed", validationFailed.Details
	default:
		return http.StatusInternalServerError, "Internal Server Error", nil
	}
}
