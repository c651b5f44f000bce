package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"library-management-system/internal/middleware"
	"library-management-system/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"role": sc.Role})
	})
	r.GET("/probe", chain...)
	return r
}

func TestIdentity(t *testing.T) {
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	t.Run("trusted headers become the scope", func(t *testing.T) {
		r := newRouter(mw, mw.Identity())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Actor-ID", "u1")
		req.Header.Set("X-Actor-Role", model.RoleLibrarian)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"role":"librarian"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("anonymous callers default to member", func(t *testing.T) {
		r := newRouter(mw, mw.Identity())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		if body := w.Body.String(); body != `{"role":"member"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})
}

func TestRequireLibrarian(t *testing.T) {
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	cases := []struct {
		role string
		want int
	}{
		{model.RoleAdmin, http.StatusOK},
		{model.RoleLibrarian, http.StatusOK},
		{model.RoleMember, http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tc := range cases {
		r := newRouter(mw, mw.Identity(), mw.RequireLibrarian())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if tc.role != "" {
			req.Header.Set("X-Actor-Role", tc.role)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("role %q: expected %d, got %d", tc.role, tc.want, w.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled limiter passes everything", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{RateLimitEnabled: false})
		r := newRouter(mw, mw.RateLimit())

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("burst exhaustion returns 429", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{
			RateLimitEnabled: true,
			RateLimitRPS:     1,
			RateLimitBurst:   2,
		})
		r := newRouter(mw, mw.RateLimit())

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("burst requests must pass, got %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %v", codes)
		}
	})
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("expected a generated request id header")
		}
	})

	t.Run("incoming id wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("expected req-123, got %q", got)
		}
	})
}
