package application

import (
	"fmt"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

// ErrUnknownApplication 존재하지 않는 지원서 이름으로 조회하거나 상태를 변경하려 할 때 반환하는 에러입니다.
var ErrUnknownApplication = apperrors.New(apperrors.NotFound, "등록되지 않은 지원서입니다")

// NewErrUnknownApplication 지원서 이름을 포함한 ErrUnknownApplication을 생성합니다.
func NewErrUnknownApplication(name string) error {
	return apperrors.Wrap(ErrUnknownApplication, apperrors.NotFound, fmt.Sprintf("지원서를 찾을 수 없습니다: '%s'", name))
}

// NewErrCorruptState 저장된 지원서 데이터를 해석할 수 없을 때 반환하는 에러를 생성합니다.
func NewErrCorruptState(err error, reason string) error {
	if err == nil {
		return apperrors.New(apperrors.ParsingFailed, "지원서 데이터가 손상되었습니다: "+reason)
	}
	return apperrors.Wrap(err, apperrors.ParsingFailed, "지원서 데이터가 손상되었습니다: "+reason)
}

// NewErrInvalidTransition 상태 전이 입력값이 유효하지 않을 때 반환하는 에러를 생성합니다.
func NewErrInvalidTransition(name, reason string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s' 지원서를 열 수 없습니다: %s", name, reason))
}

// NewErrInvariantViolated 상태 불변식이 깨졌을 때 반환하는 에러를 생성합니다.
func NewErrInvariantViolated(name string, status Status) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("지원서 상태 불변식 위반: '%s' (status: %s)", name, status))
}

// NewErrPersistFailed 지원서 데이터 저장에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPersistFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "지원서 데이터 저장에 실패했습니다")
}
