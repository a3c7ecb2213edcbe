package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shoplite/internal/domain"
)

// ErrorResponse is the envelope every non-2xx response uses.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Timestamp  string   `json:"timestamp"`
	Path       string   `json:"path"`
	Method     string   `json:"method"`
	Message    []string `json:"message"`
	Errors     any      `json:"errors,omitempty"`
}

func writeError(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Message:    messages,
	})
}

// respondError is the single place business failures map to HTTP
// statuses. Anything outside the taxonomy becomes an opaque 500; the
// detail goes to the server log only.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		writeError(c, http.StatusBadRequest, validationErr.Messages...)
	case errors.Is(err, domain.ErrUserExists):
		writeError(c, http.StatusConflict, "Username or email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.As(err, &notFoundErr):
		writeError(c, http.StatusNotFound, notFoundMessage(notFoundErr))
	default:
		h.logger.WithError(err).WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("unhandled error")
		writeError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func notFoundMessage(err *domain.NotFoundError) string {
	return fmt.Sprintf("%s with ID %d not found", err.Kind, err.ID)
}
