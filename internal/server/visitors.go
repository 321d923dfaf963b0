package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	loggerKey contextKey = "logger"

	requestIDHeader = "X-Request-ID"
)

// untrackedPrefixes are asset and health check paths that are not page visits.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz", "/cv.pdf"}

// ipHasher turns client IPs into short salted digests so logs never carry a
// raw address.
type ipHasher struct {
	salt string
}

func newIPHasher(salt string) (ipHasher, error) {
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return ipHasher{}, fmt.Errorf("generate hash salt: %w", err)
		}
		salt = hex.EncodeToString(b)
	}
	return ipHasher{salt: salt}, nil
}

// Hash is stable for a given ip and salt.
func (h ipHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// isVisit reports whether a request counts as a page visit worth logging.
// Do Not Track is honoured.
func isVisit(c *gin.Context) bool {
	path := c.Request.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return c.GetHeader("DNT") != "1"
}

// requestID tags every request with an id, echoes it in the response and
// stores a request scoped logger in the request context.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set(requestIDHeader, id)

		logger := log.With().Str("request_id", id).Logger()
		ctx := context.WithValue(c.Request.Context(), loggerKey, logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// visitLogger logs each request once it is handled. Page visits carry the
// hashed client IP and user agent; everything else is logged at debug.
func visitLogger(h ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := loggerFrom(c)
		ev := logger.Debug()
		if isVisit(c) {
			ev = logger.Info().
				Str("visitor", h.Hash(c.ClientIP())).
				Str("user_agent", c.Request.UserAgent())
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

func loggerFrom(c *gin.Context) zerolog.Logger {
	if logger, ok := c.Request.Context().Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return log.Logger
}
