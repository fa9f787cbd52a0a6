package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyBoardService 외부 의존성 ID: 지원서 게시판 서비스
	DependencyBoardService = "board_service"

	// DependencyDiscordGateway 외부 의존성 ID: 디스코드 게이트웨이 연결
	DependencyDiscordGateway = "discord_gateway"

	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotRunning     = "서비스가 실행 중이 아님"
	MsgDepStatusDisconnected   = "게이트웨이에 연결되어 있지 않음"
	MsgDepStatusNotInitialized = "서비스가 초기화되지 않음"

	// LivenessMessage GET / 요청에 대한 응답 본문입니다.
	LivenessMessage = "Bot is running!"
)
