package middleware

import (
	"Reunite/internal/model"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	viewer *service.Viewer
	err    error
	token  string
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*service.Viewer, error) {
	s.token = token
	return s.viewer, s.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint64(consts.CtxUserID)})
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	active := &service.Viewer{UserID: 7, CollegeID: 2, Status: model.StatusActive, Role: model.RoleUser}
	tests := []struct {
		name   string
		header string
		auth   *stubAuth
		want   int
	}{
		{"missing header", "", &stubAuth{viewer: active}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", &stubAuth{viewer: active}, http.StatusUnauthorized},
		{"rejected token", "Bearer abc", &stubAuth{err: service.ErrTokenInvalid}, http.StatusUnauthorized},
		{"valid token", "Bearer abc", &stubAuth{viewer: active}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newEngine(AuthMiddleware(tt.auth)), tt.header)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK && !strings.Contains(w.Body.String(), `"user_id":7`) {
				t.Fatalf("body = %s", w.Body.String())
			}
		})
	}
}

func TestCheckActiveStatus(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{model.StatusActive, http.StatusOK},
		{model.StatusPending, http.StatusForbidden},
		{model.StatusDeactive, http.StatusForbidden},
	}
	for _, tt := range tests {
		auth := &stubAuth{viewer: &service.Viewer{UserID: 1, Status: tt.status, Role: model.RoleUser}}
		w := do(newEngine(AuthMiddleware(auth), CheckActiveStatus()), "Bearer t")
		if w.Code != tt.want {
			t.Errorf("status %q: code = %d, want %d", tt.status, w.Code, tt.want)
		}
	}
}

func TestCheckRoles(t *testing.T) {
	for role, want := range map[string]int{
		model.RoleAdmin: http.StatusOK,
		model.RoleUser:  http.StatusForbidden,
	} {
		auth := &stubAuth{viewer: &service.Viewer{UserID: 1, Status: model.StatusActive, Role: role}}
		w := do(newEngine(AuthMiddleware(auth), CheckRoles(model.RoleAdmin)), "Bearer t")
		if w.Code != want {
			t.Errorf("role %q: code = %d, want %d", role, w.Code, want)
		}
	}
}

func TestTraceMiddleware(t *testing.T) {
	r := newEngine(TraceMiddleware())
	w := do(r, "")
	if w.Header().Get(TraceHeader) == "" {
		t.Fatal("trace header not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "fixed")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(TraceHeader); got != "fixed" {
		t.Fatalf("trace header = %q", got)
	}
}

func TestMaskSecrets(t *testing.T) {
	out := string(maskSecrets([]byte(`{"email":"a@b.c","password":"hunter2","newPassword":"x"}`)))
	if strings.Contains(out, "hunter2") || !strings.Contains(out, "a@b.c") {
		t.Fatalf("masked = %s", out)
	}
	if got := string(maskSecrets([]byte("not json"))); got != "not json" {
		t.Fatalf("non json = %s", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight code = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatal("origin not echoed")
	}
}
