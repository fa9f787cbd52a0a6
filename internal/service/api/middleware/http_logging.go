package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/application-board/internal/service/api/constants"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/darkkaiser/application-board/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록되는 값입니다.
const defaultBytesIn = "0"

// sensitiveQueryParams 로깅 시 값을 마스킹해야 하는 쿼리 파라미터 목록입니다.
var sensitiveQueryParams = []string{
	"token",
	"api_key",
	"password",
	"secret",
}

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 헬스체크는 모니터링 시스템이 주기적으로 호출하므로 정상 응답은 Debug 레벨로 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = defaultBytesIn
			}

			entry := applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
				"method":        req.Method,
				"path":          path,
				"uri":           maskSensitiveQueryParams(req.RequestURI),
				"remote_ip":     c.RealIP(),
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"bytes_in":      bytesIn,
				"bytes_out":     strconv.FormatInt(res.Size, 10),
				"latency_human": latency.String(),
				"request_id":    res.Header().Get(echo.HeaderXRequestID),
			})

			if res.Status < 400 && (path == "/" || path == "/health") {
				entry.Debug("HTTP 요청")
			} else {
				entry.Info("HTTP 요청")
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하면 원본을 그대로 반환합니다.
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
