package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/application-board/internal/service/api/constants"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery panic을 복구하고 로깅하는 미들웨어를 반환합니다.
//
// 복구한 panic은 500 에러로 변환하여 Echo의 에러 핸들러로 전달합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				// http.ErrAbortHandler는 의도적인 연결 중단이므로 다시 panic을 발생시킵니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := NewErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
					"stack":  string(stack[:length]),
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error("요청 처리 중 패닉 복구됨")

				returnErr = err
			}()

			return next(c)
		}
	}
}
