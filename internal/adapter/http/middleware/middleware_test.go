package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signed(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newAuthRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/private", JWTAuth(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid := Claims{
		Name: "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	cases := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"valid token", testSecret, "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusOK},
		{"missing header", testSecret, "", http.StatusUnauthorized},
		{"wrong scheme", testSecret, "Basic abc", http.StatusUnauthorized},
		{"wrong secret", testSecret, "Bearer " + signed(t, jwt.SigningMethodHS256, []byte("other"), valid), http.StatusUnauthorized},
		{"wrong algorithm", testSecret, "Bearer " + signed(t, jwt.SigningMethodHS512, []byte(testSecret), valid), http.StatusUnauthorized},
		{"expired", testSecret, "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		}), http.StatusUnauthorized},
		{"missing subject", testSecret, "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{Name: "Ana"}), http.StatusUnauthorized},
		{"auth disabled", "", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(tc.secret).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
			if tc.want == http.StatusOK && w.Body.String() != "user-1" {
				t.Fatalf("expected user id in context, got %q", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get("X-Request-ID")
		if id == "" || id != w.Body.String() {
			t.Fatalf("expected generated id, header=%q body=%q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get("X-Request-ID") != "req-42" {
			t.Fatalf("expected propagated id, got %q", w.Header().Get("X-Request-ID"))
		}
	})
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("burst then throttle per client", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		l := NewIPRateLimiter(10, 2)
		l.now = func() time.Time { return now }

		if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
			t.Fatalf("burst must be allowed")
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("third attempt must be throttled")
		}
		if !l.Allow("10.0.0.2") {
			t.Fatalf("other clients keep their own bucket")
		}

		now = now.Add(6 * time.Second)
		if !l.Allow("10.0.0.1") {
			t.Fatalf("one token refills every 6s at 10/min")
		}
	})

	t.Run("idle clients are pruned", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		l := NewIPRateLimiter(10, 1)
		l.now = func() time.Time { return now }
		l.Allow("10.0.0.1")

		now = now.Add(limiterIdleTTL + time.Second)
		l.Allow("10.0.0.2")
		if _, ok := l.clients["10.0.0.1"]; ok {
			t.Fatalf("expected idle client to be pruned")
		}
	})

	t.Run("middleware answers 429", func(t *testing.T) {
		l := NewIPRateLimiter(1, 1)
		r := gin.New()
		r.POST("/login", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
			t.Fatalf("unexpected codes: %v", codes)
		}
	})
}
