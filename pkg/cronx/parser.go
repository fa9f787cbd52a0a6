// Package cronx 애플리케이션 전체에서 공유하는 Cron 표현식 파서를 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 애플리케이션의 표준 Cron 표현식 파서를 반환합니다.
//
// 초 필드가 없는 표준 5필드 형식과 디스크립터를 지원합니다.
//
// 지원 스펙:
//   - 필드 순서: [분] [시] [일] [월] [요일]
//   - 특수 표현식: @daily, @hourly, @every <duration> 등 (Descriptor)
//
// 예시:
//   - "*/15 * * * *" : 15분마다 실행
//   - "@every 1h"    : 1시간 간격으로 실행
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한 표현식인지 검사합니다.
func Validate(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return fmt.Errorf("cron 표현식이 비어 있습니다")
	}
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("잘못된 cron 표현식입니다(%q): %w", spec, err)
	}
	return nil
}
