package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDMintedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	rid := w.Header().Get("X-Request-ID")
	if rid == "" {
		t.Fatalf("expected a generated request id header")
	}
	if w.Body.String() != rid {
		t.Errorf("context id %q does not match header %q", w.Body.String(), rid)
	}
}

func TestRequestIDPassesClientIDThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, GetRequestID(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" {
		t.Errorf("request id = %q, want abc-123", w.Body.String())
	}
}
