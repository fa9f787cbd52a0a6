// Package system 시스템 엔드포인트의 응답 모델을 정의합니다.
package system

import "time"

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy
	Status string `json:"status"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty"`
}

// BoardStatus 지원서 게시판의 현재 상태
type BoardStatus struct {
	Applications     int        `json:"applications"`
	OpenApplications int        `json:"open_applications"`
	QueueDepth       int        `json:"queue_depth"`
	QueueCapacity    int        `json:"queue_capacity"`
	LastReconcile    *time.Time `json:"last_reconcile,omitempty"`
	LastError        string     `json:"last_error,omitempty"`
}

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime"`
	// 게시판 상태 (게시판 서비스가 연결된 경우)
	Board *BoardStatus `json:"board,omitempty"`
	// 외부 의존성별 헬스체크 결과 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
