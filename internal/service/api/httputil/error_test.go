package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/application-board/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTooManyRequestsError(t *testing.T) {
	t.Parallel()

	err := NewTooManyRequestsError("slow down")

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
	assert.Equal(t, ErrorResponse{ResultCode: http.StatusTooManyRequests, Message: "slow down"}, he.Message)
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "일반 에러는 500",
			method:      http.MethodGet,
			err:         errors.New("unexpected"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: constants.ErrMsgInternalServer,
		},
		{
			name:        "문자열 메시지 HTTPError",
			method:      http.MethodGet,
			err:         echo.NewHTTPError(http.StatusBadRequest, "bad request"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "bad request",
		},
		{
			name:        "ErrorResponse 메시지 HTTPError",
			method:      http.MethodGet,
			err:         NewTooManyRequestsError("slow down"),
			wantCode:    http.StatusTooManyRequests,
			wantMessage: "slow down",
		},
		{
			name:        "404는 고정 메시지",
			method:      http.MethodGet,
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: constants.ErrMsgNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tt.method, "/test", nil), rec)

			ErrorHandler(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.ResultCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestErrorHandler_Head(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/health", nil), rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_Committed(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	ErrorHandler(errors.New("late error"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
