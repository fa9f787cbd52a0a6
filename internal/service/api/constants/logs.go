package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	LogMsgServiceStarting       = "서비스 시작 진입: API 서비스 초기화 프로세스를 시작합니다"
	LogMsgServiceStarted        = "서비스 시작 완료: API 서비스가 정상적으로 초기화되었습니다"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 실행 중입니다 (중복 호출)"
	LogMsgServiceStopping       = "서비스 종료 진입: API 서비스를 종료합니다"
	LogMsgServiceStopped        = "서비스 종료 완료: API 서비스가 정상적으로 종료되었습니다"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgHTTPServerShutdownError = "HTTP 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "HTTP 서버를 구동하는 중에 치명적인 오류가 발생하였습니다"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"

	LogMsgHealthCheck = "헬스체크 요청"
	LogMsgVersionInfo = "버전 정보 요청"
)

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	ErrMsgNotFound        = "페이지를 찾을 수 없습니다"
	ErrMsgInternalServer  = "내부 서버 오류가 발생했습니다"
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
)
