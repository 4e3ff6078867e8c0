package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type selectionInput struct {
		CompanyID  string `json:"company_id" binding:"required,uuid"`
		ScenarioID string `json:"scenario_id" binding:"omitempty,uuid"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/selection", func(c *gin.Context) {
		var req selectionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns validation errors for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"company_id": "not-a-uuid", "scenario_id": "also-bad"}`)
		req := httptest.NewRequest("PUT", "/selection", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.False(t, resp.Success)
		assert.Equal(t, "ERR_VALIDATION", resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)

		details, ok := resp.Data.([]interface{})
		require.True(t, ok, "details ride in the data field")
		assert.Len(t, details, 2)

		// Field names come from the JSON tags, not the Go field names.
		first, ok := details[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "company_id", first["field"])
	})

	t.Run("returns success for valid input", func(t *testing.T) {
		body := strings.NewReader(`{"company_id": "550e8400-e29b-41d4-a716-446655440001"}`)
		req := httptest.NewRequest("PUT", "/selection", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type testStruct struct {
		Required string `binding:"required"`
		UUID     string `binding:"uuid"`
		Min      string `binding:"min=5"`
		Max      string `binding:"max=10"`
		OneOf    string `binding:"oneof=annuale infrannuale"`
		GTE      int    `binding:"gte=10"`
		LTE      int    `binding:"lte=100"`
	}

	v := validator.New()
	// The test struct declares its rules in `binding` tags, the tag gin's
	// validator reads; the standalone validator must read the same tags.
	v.SetTagName("binding")

	tests := []struct {
		field    string
		obj      testStruct
		expected string
	}{
		{"Required", testStruct{UUID: "x", Min: "abcde", OneOf: "annuale", GTE: 10, LTE: 0}, "This field is required"},
		{"UUID", testStruct{Required: "x", UUID: "invalid", Min: "abcde", OneOf: "annuale", GTE: 10}, "Invalid UUID format"},
		{"Min", testStruct{Required: "x", Min: "ab", OneOf: "annuale", GTE: 10}, "Must be at least 5 characters"},
		{"Max", testStruct{Required: "x", Min: "abcde", Max: "this is way too long", OneOf: "annuale", GTE: 10}, "Must be at most 10 characters"},
		{"OneOf", testStruct{Required: "x", Min: "abcde", OneOf: "mensile", GTE: 10}, "Must be one of: annuale infrannuale"},
		{"GTE", testStruct{Required: "x", Min: "abcde", OneOf: "annuale", GTE: 5}, "Must be greater than or equal to 10"},
		{"LTE", testStruct{Required: "x", Min: "abcde", OneOf: "annuale", GTE: 10, LTE: 200}, "Must be less than or equal to 100"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := v.Struct(tt.obj)
			require.Error(t, err)

			validationErrs := err.(validator.ValidationErrors)
			for _, e := range validationErrs {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, getValidationMessage(e))
					return
				}
			}
			t.Fatalf("no validation error reported for field %s", tt.field)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("handles validator.ValidationErrors", func(t *testing.T) {
		type input struct {
			Name string `json:"name" binding:"required"`
		}

		router := gin.New()
		router.POST("/test", func(c *gin.Context) {
			var in input
			if err := c.ShouldBindJSON(&in); err != nil {
				HandleValidationError(c, err)
				return
			}
		})

		body := strings.NewReader(`{}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
	})

	t.Run("carries the request ID set by the RequestID middleware", func(t *testing.T) {
		type input struct {
			Name string `json:"name" binding:"required"`
		}

		router := gin.New()
		router.Use(RequestID())
		router.POST("/test", func(c *gin.Context) {
			var in input
			if err := c.ShouldBindJSON(&in); err != nil {
				HandleValidationError(c, err)
				return
			}
		})

		body := strings.NewReader(`{}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "req-validation-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "req-validation-1", resp.Error.RequestID)
	})
}
