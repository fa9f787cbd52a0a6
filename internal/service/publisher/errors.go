package publisher

import (
	"fmt"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

// NewErrPublishFailed 플랫폼에 요약 메시지를 게시하거나 수정하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPublishFailed(err error, op string) error {
	return apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("요약 메시지 %s에 실패했습니다", op))
}

// NewErrCorruptReference 저장된 메시지 참조 데이터를 해석할 수 없을 때 반환하는 에러를 생성합니다.
func NewErrCorruptReference(reason string) error {
	return apperrors.New(apperrors.ParsingFailed, "메시지 참조 데이터가 손상되었습니다: "+reason)
}

// NewErrReferencePersistFailed 새로 게시한 메시지의 참조를 저장하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrReferencePersistFailed(err error, ref MessageRef) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("메시지 참조(%s) 저장에 실패했습니다", ref))
}
