package response

import (
	"Reunite/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	type body struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(body{})

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"sentinel", service.ErrPostNotFound, http.StatusNotFound, service.ErrPostNotFound.Error()},
		{"wrapped sentinel", fmt.Errorf("load: %w", service.ErrStatusNotPending), http.StatusConflict, "load: "},
		{"validation", validationErr, http.StatusBadRequest, "Invalid request parameters"},
		{"unknown", errors.New("dial tcp: refused"), http.StatusInternalServerError, "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			Error(c, tt.err)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			if !strings.Contains(w.Body.String(), tt.message) {
				t.Fatalf("body = %s", w.Body.String())
			}
			if tt.code == http.StatusInternalServerError && strings.Contains(w.Body.String(), "refused") {
				t.Fatal("internal error detail leaked")
			}
		})
	}
}
