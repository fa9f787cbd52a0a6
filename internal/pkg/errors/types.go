package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 불변식 위반 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값 또는 누락된 설정값
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 플랫폼 호출 등 작업 수행 실패
	ExecutionFailed

	// ParsingFailed 저장된 데이터의 파싱 또는 형식 변환 실패
	ParsingFailed

	// Unavailable 서비스 일시적 사용 불가 (과부하, 종료 중 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Unavailable:     "Unavailable",
}

// String 에러 타입의 이름을 반환합니다. 정의되지 않은 값은 "ErrorType(N)" 형식으로 표현합니다.
func (t ErrorType) String() string {
	if t >= 0 && int(t) < len(errorTypeNames) {
		return errorTypeNames[t]
	}
	return "ErrorType(" + strconv.Itoa(int(t)) + ")"
}
