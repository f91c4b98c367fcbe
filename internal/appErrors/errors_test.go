package appErrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithDetails_DoesNotMutate - предопределенные ошибки общие
// для всех запросов, детали не должны в них оседать
func TestWithDetails_DoesNotMutate(t *testing.T) {
	t.Parallel()

	detailed := ErrValidationFailed.WithDetails(map[string]string{"email": "bad"})

	assert.Nil(t, ErrValidationFailed.Details)
	assert.NotNil(t, detailed.Details)
	assert.Equal(t, ErrValidationFailed.Code, detailed.Code)
}

func TestWrap_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	wrapped := Wrap(cause, CodeDatabaseError, "Database error", http.StatusInternalServerError)

	assert.ErrorIs(t, wrapped, cause)
}

// TestMarshalJSON - внутренняя ошибка и HTTP-код в JSON не попадают
func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("secret detail"), CodeInternalError, "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), "INTERNAL_ERROR")
}

// TestHandleError - AppError уходит со своим статусом, прочие
// ошибки прячутся за 500
func TestHandleError(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"app error", ErrUserNotFound, http.StatusNotFound, CodeUserNotFound},
		{"conflict", ErrUserHasActiveJobs, http.StatusConflict, CodeUserHasActiveJobs},
		{"plain error", errors.New("pq: syntax error"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	// Детали персистентного слоя не протекают клиенту
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleError(c, errors.New("pq: syntax error"))
	assert.NotContains(t, rec.Body.String(), "pq: syntax error")
}
