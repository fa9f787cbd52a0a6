package board

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/application-board/internal/application"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/service/publisher"
	"github.com/darkkaiser/application-board/internal/summary"
	"github.com/stretchr/testify/mock"
)

const (
	adminRole  = "409876543210987654"
	memberRole = "509876543210987654"
)

var testSeed = []string{"Support Application", "Trainer Application"}

// mockResponder Responder 인터페이스의 Mock 구현체입니다.
type mockResponder struct {
	mock.Mock
}

func (m *mockResponder) Reply(ctx context.Context, content string) error {
	return m.Called(ctx, content).Error(0)
}

func (m *mockResponder) PresentChoices(ctx context.Context, choices Choices) error {
	return m.Called(ctx, choices).Error(0)
}

func (m *mockResponder) ShowForm(ctx context.Context, form Form) error {
	return m.Called(ctx, form).Error(0)
}

// mockReconciler Reconciler 인터페이스의 Mock 구현체입니다.
type mockReconciler struct {
	mock.Mock
}

func (m *mockReconciler) Reconcile(ctx context.Context, doc summary.Document) (publisher.Outcome, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(publisher.Outcome), args.Error(1)
}

// memBlob 테스트용 메모리 기반 Blob 구현체입니다.
type memBlob struct {
	mu      sync.Mutex
	data    []byte
	exists  bool
	saveErr error
	saves   int
}

func (b *memBlob) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.exists {
		return nil, apperrors.New(apperrors.NotFound, "not found")
	}
	return append([]byte(nil), b.data...), nil
}

func (b *memBlob) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.saveErr != nil {
		return b.saveErr
	}
	b.data = append([]byte(nil), data...)
	b.exists = true
	b.saves++
	return nil
}

func (b *memBlob) setSaveErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saveErr = err
}

// fakePlatform 게시된 메시지를 메모리에 보관하는 publisher.Platform 구현체입니다.
type fakePlatform struct {
	mu       sync.Mutex
	nextID   int
	messages map[publisher.MessageRef]summary.Document
	sends    int
	edits    int
	sendErr  error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{messages: make(map[publisher.MessageRef]summary.Document)}
}

func (p *fakePlatform) SendMessage(_ context.Context, _ string, doc summary.Document) (publisher.MessageRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sendErr != nil {
		return "", p.sendErr
	}
	p.nextID++
	p.sends++
	ref := publisher.MessageRef(fmt.Sprintf("11%016d", p.nextID))
	p.messages[ref] = doc
	return ref, nil
}

func (p *fakePlatform) FetchMessage(_ context.Context, _ string, ref publisher.MessageRef) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.messages[ref]; !ok {
		return apperrors.New(apperrors.NotFound, "Unknown Message")
	}
	return nil
}

func (p *fakePlatform) EditMessage(_ context.Context, _ string, ref publisher.MessageRef, doc summary.Document) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.messages[ref]; !ok {
		return apperrors.New(apperrors.NotFound, "Unknown Message")
	}
	p.edits++
	p.messages[ref] = doc
	return nil
}

func (p *fakePlatform) deleteAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = make(map[publisher.MessageRef]summary.Document)
}

func (p *fakePlatform) snapshot() (sends, edits int, messages map[publisher.MessageRef]summary.Document) {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make(map[publisher.MessageRef]summary.Document, len(p.messages))
	for k, v := range p.messages {
		copied[k] = v
	}
	return p.sends, p.edits, copied
}

func loadTestStore(blob *memBlob) (*application.Store, error) {
	return application.Load(blob, testSeed)
}
