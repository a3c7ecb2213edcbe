package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// Identity is the authenticated caller resolved by the access guard.
// Claims are trusted for the request's duration; no directory lookup
// happens per request.
type Identity struct {
	UserID int64
	Email  string
}

// identityFrom returns the identity attached by authRequired. Calling it
// on an unguarded route is a programming error.
func identityFrom(c *gin.Context) Identity {
	return c.MustGet(identityKey).(Identity)
}

// authRequired extracts and verifies the bearer token, attaching the
// resolved identity for downstream handlers. Any failure is a 401.
func (h *Handler) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := h.tokens.Verify(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.Set(identityKey, Identity{UserID: userID, Email: claims.Email})
	c.Next()
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request handled")
	}
}
