package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		payload any
		check   func(t *testing.T, err error)
	}{
		{
			name:    "문자열 패닉",
			payload: "치명적인 오류",
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.Internal))
				assert.Contains(t, err.Error(), "치명적인 오류")
			},
		},
		{
			name:    "에러 패닉",
			payload: errBoom,
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.Internal))
				assert.ErrorIs(t, err, errBoom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

			h := PanicRecovery()(func(echo.Context) error { panic(tt.payload) })

			err := h(c)
			require.Error(t, err)
			tt.check(t, err)
		})
	}

	t.Run("패닉이 없으면 핸들러 결과를 그대로 반환", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.NoError(t, PanicRecovery()(func(echo.Context) error { return nil })(c))

		errHandler := errors.New("handler error")
		assert.ErrorIs(t, PanicRecovery()(func(echo.Context) error { return errHandler })(c), errHandler)
	})

	t.Run("ErrAbortHandler는 다시 패닉", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		h := PanicRecovery()(func(echo.Context) error { panic(http.ErrAbortHandler) })

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
	})
}
