package api

import (
	"time"

	"github.com/darkkaiser/application-board/internal/service/api/constants"
	"github.com/darkkaiser/application-board/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/application-board/internal/service/api/middleware"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: constants.DefaultRequestTimeout)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어가 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery - 다른 미들웨어의 panic도 복구하도록 가장 먼저 적용
//  2. RequestID - 로깅 전에 요청 ID를 부여
//  3. Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록하도록 RateLimit/Timeout 이전에 적용
//  5. RateLimit - IP별 요청 제한
//  6. BodyLimit
//  7. Timeout
//  8. Secure - 보안 헤더 추가
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.Secure())

	return e
}
