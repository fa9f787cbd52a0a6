package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

var (
	// ErrNotFound 요청한 이름의 데이터가 아직 저장된 적이 없을 때 반환하는 에러입니다.
	ErrNotFound = apperrors.New(apperrors.NotFound, "저장된 데이터가 존재하지 않습니다")

	// ErrPathTraversalDetected 저장소 디렉토리를 벗어나는 이름이 전달되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")
)

// NewErrInvalidName 파일명으로 사용할 수 없는 이름이 전달되었을 때 반환하는 에러를 생성합니다.
func NewErrInvalidName(name string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("저장소 파일명이 올바르지 않습니다: '%s'", name))
}

// NewErrDirectoryAccessFailed 저장소 초기화 시 디렉토리 생성 또는 접근에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrReadFailed 파일 읽기에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrReadFailed(err error, name string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("데이터 조회 실패: '%s' 파일 읽기 중 오류가 발생했습니다", name))
}

// NewErrWriteFailed 원자적 쓰기의 특정 단계에서 실패했을 때 반환하는 에러를 생성합니다.
func NewErrWriteFailed(err error, name, stage string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("데이터 저장 실패: '%s' %s 중 오류가 발생했습니다", name, stage))
}
