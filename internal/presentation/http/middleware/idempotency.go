package middleware

import (
	"bytes"

	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/infrastructure/session"
)

// IdempotencyKeyHeader is the HTTP header for idempotency keys
const IdempotencyKeyHeader = "Idempotency-Key"

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated key so a
// double-clicked submit records the order exactly once. Requests without a
// key proceed normally; only successful responses are cached, failures
// stay retryable.
func Idempotency(store *session.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		// Scope the key to the endpoint so reusing one key across
		// different calls cannot replay the wrong response.
		key = c.Request.Method + " " + c.FullPath() + " " + key

		if cached, ok := store.Get(key); ok {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			store.Set(key, c.Writer.Status(), blw.body.Bytes())
		}
	}
}
