package publisher

import (
	"context"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/summary"
	"github.com/stretchr/testify/mock"
)

// mockPlatform Platform 인터페이스의 Mock 구현체입니다.
type mockPlatform struct {
	mock.Mock
}

func (m *mockPlatform) SendMessage(ctx context.Context, channelID string, doc summary.Document) (MessageRef, error) {
	args := m.Called(ctx, channelID, doc)
	return args.Get(0).(MessageRef), args.Error(1)
}

func (m *mockPlatform) FetchMessage(ctx context.Context, channelID string, ref MessageRef) error {
	return m.Called(ctx, channelID, ref).Error(0)
}

func (m *mockPlatform) EditMessage(ctx context.Context, channelID string, ref MessageRef, doc summary.Document) error {
	return m.Called(ctx, channelID, ref, doc).Error(0)
}

// memBlob 테스트용 메모리 기반 Blob 구현체입니다.
type memBlob struct {
	data    []byte
	exists  bool
	saveErr error
	saves   int
}

func (b *memBlob) Load() ([]byte, error) {
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
