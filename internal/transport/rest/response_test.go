package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic/internal/domain"
)

func TestDomainErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, codeNotFound},
		{domain.ErrInvalidState, http.StatusConflict, codeInvalidState},
		{domain.ErrDuplicateShift, http.StatusConflict, codeDuplicateShift},
		{domain.ErrSlotUnavailable, http.StatusConflict, codeSlotUnavailable},
		{domain.ErrAlreadyCompleted, http.StatusConflict, codeAlreadyCompleted},
		{domain.ErrInvalidRequest, http.StatusBadRequest, codeInvalidRequest},
		{errors.New("сбой соединения с базой"), http.StatusInternalServerError, codeSystemError},
		// Обёрнутая доменная ошибка распознаётся через errors.Is.
		{fmt.Errorf("отмена смены: %w", domain.ErrNotFound), http.StatusNotFound, codeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			domainErrorResponse(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body errorResponseBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestDomainErrorResponseHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	domainErrorResponse(c, errors.New("pq: connection refused 10.0.0.5:5432"))

	var body errorResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// Текст внутренней ошибки не утекает клиенту.
	assert.Equal(t, "внутренняя ошибка сервера", body.Message)
}
