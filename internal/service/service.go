// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service Start로 구동되고 serviceStopCtx 취소로 종료되는 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행하며,
// 서비스는 완전히 종료되었을 때(시작에 실패한 경우 포함) serviceStopWG.Done()을 정확히 한 번 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
