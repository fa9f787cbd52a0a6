package config

import (
	"fmt"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

// NewErrConfigMissing 필수 설정 값이 누락되었을 때 반환하는 에러를 생성합니다.
func NewErrConfigMissing(key, envName string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("필수 설정 '%s'이(가) 누락되었습니다 (환경 변수 %s를 설정하세요)", key, envName))
}
