// Package publisher 지정된 채널에 단 하나의 요약 메시지가 최신 상태로 게시되도록 유지합니다.
//
// 저장된 메시지 참조가 있으면 해당 메시지를 수정하고, 참조가 없거나 수정에 실패하면
// (예: 누군가 메시지를 삭제한 경우) 새 메시지를 게시한 뒤 참조를 교체합니다.
package publisher

import (
	"context"
	"time"

	"github.com/darkkaiser/application-board/internal/summary"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"golang.org/x/time/rate"
)

const component = "publisher"

const (
	// 플랫폼 호출 간격 제한 (Discord 채널당 5회/5초 제한보다 보수적으로 설정)
	defaultRateLimit = rate.Limit(1)
	defaultRateBurst = 3
)

// MessageRef 플랫폼이 발급한 메시지 식별자입니다.
type MessageRef string

// Platform 요약 메시지를 게시할 채팅 플랫폼입니다.
type Platform interface {
	// SendMessage 채널에 새 메시지를 게시하고 식별자를 반환합니다.
	SendMessage(ctx context.Context, channelID string, doc summary.Document) (MessageRef, error)

	// FetchMessage 메시지가 여전히 존재하는지 확인합니다.
	FetchMessage(ctx context.Context, channelID string, ref MessageRef) error

	// EditMessage 기존 메시지의 내용을 교체합니다.
	EditMessage(ctx context.Context, channelID string, ref MessageRef, doc summary.Document) error
}

// Outcome 동기화 결과입니다.
type Outcome int

const (
	// OutcomeCreated 참조가 없어 새 메시지를 게시했습니다.
	OutcomeCreated Outcome = iota + 1

	// OutcomeEdited 기존 메시지를 수정했습니다.
	OutcomeEdited

	// OutcomeRecreated 기존 메시지를 수정할 수 없어 새 메시지를 게시했습니다.
	OutcomeRecreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeEdited:
		return "edited"
	case OutcomeRecreated:
		return "recreated"
	default:
		return "unknown"
	}
}

// Publisher 요약 메시지 동기화를 수행합니다.
type Publisher struct {
	platform  Platform
	channelID string
	reference *Reference

	limiter *rate.Limiter
}

// Option Publisher 생성 옵션입니다.
type Option func(*Publisher)

// WithRateLimit 플랫폼 호출 빈도 제한을 변경합니다.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(p *Publisher) {
		p.limiter = rate.NewLimiter(limit, burst)
	}
}

// New Publisher를 생성합니다.
func New(platform Platform, channelID string, reference *Reference, opts ...Option) *Publisher {
	p := &Publisher{
		platform:  platform,
		channelID: channelID,
		reference: reference,

		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reconcile 요약 메시지를 doc 내용으로 맞춥니다.
//
//  1. 참조가 없으면 새 메시지를 게시하고 참조를 저장합니다. (OutcomeCreated)
//  2. 참조가 있으면 메시지를 조회한 뒤 수정합니다. (OutcomeEdited)
//  3. 조회나 수정이 실패하면 1번으로 돌아가 새 메시지를 게시합니다. (OutcomeRecreated)
//
// 새 메시지 게시가 실패하면 재시도하지 않고 ExecutionFailed 타입의 에러를 반환합니다.
// 게시 후 참조 저장에만 실패한 경우는 기록만 남기고 성공으로 처리합니다.
func (p *Publisher) Reconcile(ctx context.Context, doc summary.Document) (Outcome, error) {
	startedAt := time.Now()

	ref, ok := p.reference.Get()
	if !ok {
		if err := p.create(ctx, doc); err != nil {
			return 0, err
		}
		p.logOutcome(OutcomeCreated, startedAt)
		return OutcomeCreated, nil
	}

	err := p.edit(ctx, ref, doc)
	if err == nil {
		p.logOutcome(OutcomeEdited, startedAt)
		return OutcomeEdited, nil
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"channel_id": p.channelID,
		"message_id": ref,
		"error":      err,
	}).Warn("기존 요약 메시지를 수정할 수 없어 새 메시지를 게시합니다")

	if err := p.create(ctx, doc); err != nil {
		return 0, err
	}
	p.logOutcome(OutcomeRecreated, startedAt)
	return OutcomeRecreated, nil
}

// Current 현재 참조하고 있는 메시지 식별자를 반환합니다.
func (p *Publisher) Current() (MessageRef, bool) {
	return p.reference.Get()
}

func (p *Publisher) create(ctx context.Context, doc summary.Document) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return NewErrPublishFailed(err, "게시")
	}

	ref, err := p.platform.SendMessage(ctx, p.channelID, doc)
	if err != nil {
		return NewErrPublishFailed(err, "게시")
	}

	if err := p.reference.Set(ref); err != nil {
		// 메시지는 이미 게시되었으므로 동기화는 성공으로 처리합니다.
		// 메모리의 참조는 유지되지만, 저장되기 전에 재시작하면 중복 게시될 수 있습니다.
		applog.WithComponentAndFields(component, applog.Fields{
			"channel_id": p.channelID,
			"message_id": ref,
			"error":      err,
		}).Error("새 요약 메시지의 참조 저장 실패: 게시는 완료되었습니다")
	}

	return nil
}

func (p *Publisher) edit(ctx context.Context, ref MessageRef, doc summary.Document) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := p.platform.FetchMessage(ctx, p.channelID, ref); err != nil {
		return err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	return p.platform.EditMessage(ctx, p.channelID, ref, doc)
}

func (p *Publisher) logOutcome(outcome Outcome, startedAt time.Time) {
	ref, _ := p.reference.Get()

	applog.WithComponentAndFields(component, applog.Fields{
		"channel_id": p.channelID,
		"message_id": ref,
		"outcome":    outcome.String(),
		"elapsed":    time.Since(startedAt).String(),
	}).Info("요약 메시지 동기화 완료")
}
