package constants

import "time"

// HTTP 서버 설정 기본값입니다.
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultRequestTimeout 요청 하나의 최대 처리 시간입니다. 초과 시 503 응답을 반환합니다.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간입니다.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기입니다. 모든 엔드포인트가 GET이므로 작게 둡니다.
	DefaultMaxBodySize = "64K"

	// IP별 초당 허용 요청 수와 버스트 허용량입니다.
	DefaultRateLimitPerSecond = 10
	DefaultRateLimitBurst     = 20
)
