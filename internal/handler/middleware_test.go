package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/backend/internal/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := auth.NewTokenCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenCodec error: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(codec), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	return router, codec
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no-header", header: ""},
		{name: "no-bearer-prefix", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage-token", header: "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, codec := newAuthRouter(t)

	token, err := codec.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestLoginRateLimit_DisabledWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", LoginRateLimit(nil, 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("response is missing %s", requestIDHeader)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "client-chosen")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "client-chosen" {
		t.Fatalf("%s = %q, want client-chosen", requestIDHeader, got)
	}
}
