package api

import (
	"github.com/darkkaiser/application-board/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 시스템 엔드포인트를 등록합니다. (모두 인증 불필요)
//
//   - GET /        : 프로세스 생존 확인 ("Bot is running!")
//   - GET /health  : 게시판 서비스와 디스코드 게이트웨이 상태
//   - GET /version : 빌드 정보
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/", h.LivenessHandler)
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}
