package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &services.ValidationError{Field: "text", Message: "blank"}, want: http.StatusUnprocessableEntity},
		{name: "not found", err: services.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("post 3: %w", services.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: services.ErrConflict, want: http.StatusConflict},
		{name: "unauthorized", err: services.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: services.ErrForbidden, want: http.StatusForbidden},
		{name: "media type", err: services.ErrUnsupportedMediaType, want: http.StatusUnsupportedMediaType},
		{name: "too large", err: services.ErrFileTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "internal", err: errors.New("database is locked"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRespondError_ValidationBody(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondError(ctx, &services.ValidationError{Field: "image_url", Message: "required"})
	assert.JSONEq(t, `{"error":"required","field":"image_url"}`, w.Body.String())
}

func TestRespondError_InternalIsOpaque(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondError(ctx, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}
