package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	apperrors "payfee/internal/errors"
	"payfee/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name:       "domain error",
			err:        fmt.Errorf("wrapped: %w", apperrors.New("CART_CLOSED", "cart already ordered", fiber.StatusConflict)),
			wantStatus: fiber.StatusConflict,
			wantBody:   map[string]interface{}{"error": "cart already ordered", "code": "CART_CLOSED"},
		},
		{
			name:       "validation error",
			err:        &validation.Error{Fields: map[string]string{"quantity": "must be between 1 and 1000"}},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantBody: map[string]interface{}{
				"error":  "Validation failed",
				"fields": map[string]interface{}{"quantity": "must be between 1 and 1000"},
			},
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection refused"),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]interface{}{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return FromError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
