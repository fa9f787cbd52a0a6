package application

import (
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

// memBlob 테스트용 메모리 기반 Blob 구현체입니다.
type memBlob struct {
	data    []byte
	exists  bool
	loadErr error
	saveErr error
	saves   int
}

func newMemBlob(data string) *memBlob {
	return &memBlob{data: []byte(data), exists: true}
}

func (b *memBlob) Load() ([]byte, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	if !b.exists {
		return nil, apperrors.New(apperrors.NotFound, "not found")
	}
	return append([]byte(nil), b.data...), nil
}

func (b *memBlob) Save(data []byte) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.data = append([]byte(nil), data...)
	b.exists = true
	b.saves++
	return nil
}
