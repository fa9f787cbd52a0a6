package board

import (
	"context"
	"time"

	"github.com/darkkaiser/application-board/internal/application"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/service/publisher"
	"github.com/darkkaiser/application-board/internal/summary"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/darkkaiser/application-board/pkg/strutil"
)

const (
	// Discord 선택 메뉴는 최대 25개의 항목을 가질 수 있습니다.
	maxChoices = 25

	// Discord 모달 제목의 최대 길이입니다.
	maxFormTitle = 45
)

// Reconciler 요약 메시지를 최신 상태로 맞추는 대상입니다.
type Reconciler interface {
	Reconcile(ctx context.Context, doc summary.Document) (publisher.Outcome, error)
}

// Router 해석된 상호작용을 권한 검사 후 알맞은 처리 함수로 전달합니다.
//
// 모든 처리 함수는 board 워커 고루틴에서 한 번에 하나씩 실행되며,
// 어떤 경로로 끝나든 Responder를 정확히 한 번 호출합니다.
type Router struct {
	store      *application.Store
	reconciler Reconciler
	whitelist  RoleWhitelist
	now        func() time.Time

	// afterReconcile 동기화가 끝날 때마다 결과를 전달받습니다. (nil 허용)
	afterReconcile func(err error)
}

// NewRouter Router를 생성합니다.
func NewRouter(store *application.Store, reconciler Reconciler, whitelist RoleWhitelist, now func() time.Time) *Router {
	if now == nil {
		now = time.Now
	}

	return &Router{
		store:      store,
		reconciler: reconciler,
		whitelist:  whitelist,
		now:        now,
	}
}

// Handle 상호작용의 종류에 맞는 처리 함수를 호출합니다.
func (r *Router) Handle(ctx context.Context, in Interaction, resp Responder) {
	switch in.Kind {
	case KindOpenCommand:
		r.OnOpenCommand(ctx, in, resp)
	case KindCloseCommand:
		r.OnCloseCommand(ctx, in, resp)
	case KindOpenSelected:
		r.OnOpenSelected(ctx, in, resp)
	case KindCloseSelected:
		r.OnCloseSelected(ctx, in, resp)
	case KindFormSubmitted:
		r.OnFormSubmitted(ctx, in, resp)
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"kind":    in.Kind,
			"user_id": in.UserID,
		}).Warn("알 수 없는 상호작용 종류입니다")

		r.respond(in, resp.Reply(ctx, msgInternalError))
	}
}

// OnOpenCommand 열 수 있는 지원서 목록을 선택 메뉴로 보여줍니다.
func (r *Router) OnOpenCommand(ctx context.Context, in Interaction, resp Responder) {
	if !r.authorize(ctx, in, resp) {
		return
	}

	r.respond(in, resp.PresentChoices(ctx, Choices{
		CustomID:    OpenSelectID,
		Prompt:      msgOpenPrompt,
		Placeholder: msgOpenPlaceholder,
		Options:     r.choices(),
	}))
}

// OnCloseCommand 닫을 수 있는 지원서 목록을 선택 메뉴로 보여줍니다.
func (r *Router) OnCloseCommand(ctx context.Context, in Interaction, resp Responder) {
	if !r.authorize(ctx, in, resp) {
		return
	}

	r.respond(in, resp.PresentChoices(ctx, Choices{
		CustomID:    CloseSelectID,
		Prompt:      msgClosePrompt,
		Placeholder: msgClosePlaceholder,
		Options:     r.choices(),
	}))
}

// OnOpenSelected 선택한 지원서의 설명과 링크를 입력받는 폼을 보여줍니다.
func (r *Router) OnOpenSelected(ctx context.Context, in Interaction, resp Responder) {
	if !r.authorize(ctx, in, resp) {
		return
	}

	if _, err := r.store.Get(in.Application); err != nil {
		r.respond(in, resp.Reply(ctx, msgUnknownApplication(in.Application)))
		return
	}

	r.respond(in, resp.ShowForm(ctx, Form{
		CustomID: FormID(in.Application),
		Title:    strutil.Truncate(formTitle(in.Application), maxFormTitle),
		Fields: []FormField{
			{CustomID: FieldDescription, Label: formDescriptionLabel, Paragraph: true, Required: true, MaxLength: application.MaxDescriptionLength},
			{CustomID: FieldLink, Label: formLinkLabel, Required: true, MaxLength: application.MaxLinkLength},
		},
	}))
}

// OnFormSubmitted 지원서를 열고 요약 메시지를 갱신한 뒤 저장합니다.
func (r *Router) OnFormSubmitted(ctx context.Context, in Interaction, resp Responder) {
	if !r.authorize(ctx, in, resp) {
		return
	}

	_, err := application.Open(r.store, in.Application, in.Description, in.Link)
	r.finishTransition(ctx, in, resp, err, "opened", msgOpened(in.Application))
}

// OnCloseSelected 지원서를 닫고 요약 메시지를 갱신한 뒤 저장합니다.
func (r *Router) OnCloseSelected(ctx context.Context, in Interaction, resp Responder) {
	if !r.authorize(ctx, in, resp) {
		return
	}

	_, err := application.Close(r.store, in.Application)
	r.finishTransition(ctx, in, resp, err, "closed", msgClosed(in.Application))
}

// finishTransition 상태 전이 이후의 공통 절차(요약 메시지 동기화 → 저장 → 응답)를 수행합니다.
//
// 요약 메시지 동기화에 실패해도 상태 변경과 저장은 되돌리지 않습니다.
// 저장에 실패하면 메모리의 상태는 유지되며 다음 저장 때 함께 기록됩니다.
func (r *Router) finishTransition(ctx context.Context, in Interaction, resp Responder, transitionErr error, action, successMsg string) {
	fields := applog.Fields{
		"kind":        in.Kind.String(),
		"user_id":     in.UserID,
		"application": in.Application,
	}

	if transitionErr != nil {
		applog.WithComponentAndFields(component, fields).WithField("error", transitionErr).Warn("지원서 상태 변경 거부")

		r.respond(in, resp.Reply(ctx, transitionMessage(in.Application, transitionErr)))
		return
	}

	publishErr := r.Reconcile(ctx)
	persistErr := r.store.Persist()

	switch {
	case persistErr != nil:
		applog.WithComponentAndFields(component, fields).WithField("error", persistErr).Error("지원서 상태 저장 실패: 메모리 상태는 유지됩니다")

		r.respond(in, resp.Reply(ctx, msgPersistFailed(in.Application, action)))

	case publishErr != nil:
		r.respond(in, resp.Reply(ctx, msgPublishFailed(in.Application, action)))

	default:
		applog.WithComponentAndFields(component, fields).Info("지원서 상태 변경 완료")

		r.respond(in, resp.Reply(ctx, successMsg))
	}
}

// Reconcile 현재 저장소 상태로 요약 메시지를 렌더링하여 게시합니다.
func (r *Router) Reconcile(ctx context.Context) error {
	doc := summary.Render(r.store.Records(), r.now())
	if doc.Omitted > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"omitted": doc.Omitted,
			"limit":   summary.MaxSections,
		}).Warn("요약 메시지 크기 제한으로 일부 지원서가 표시되지 않습니다")
	}

	outcome, err := r.reconciler.Reconcile(ctx, doc)
	if r.afterReconcile != nil {
		r.afterReconcile(err)
	}
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("요약 메시지 동기화 실패")

		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"outcome": outcome.String(),
	}).Debug("요약 메시지 동기화 결과")

	return nil
}

// authorize 권한이 없으면 거부 응답을 보내고 false를 반환합니다.
func (r *Router) authorize(ctx context.Context, in Interaction, resp Responder) bool {
	if r.whitelist.Allows(in.RoleIDs) {
		return true
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"kind":        in.Kind.String(),
		"user_id":     in.UserID,
		"application": in.Application,
	}).Warn("권한 없는 사용자의 요청 거부")

	r.respond(in, resp.Reply(ctx, msgPermissionDenied))
	return false
}

func (r *Router) choices() []string {
	names := r.store.Names()
	if len(names) > maxChoices {
		applog.WithComponentAndFields(component, applog.Fields{
			"count": len(names),
			"limit": maxChoices,
		}).Warn("선택 메뉴 항목 수 제한으로 일부 지원서가 표시되지 않습니다")

		names = names[:maxChoices]
	}
	return names
}

// respond 응답 전송 실패를 기록합니다. 응답은 재시도하지 않습니다.
func (r *Router) respond(in Interaction, err error) {
	if err == nil {
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"kind":    in.Kind.String(),
		"user_id": in.UserID,
		"error":   err,
	}).Error("상호작용 응답 전송 실패")
}

func transitionMessage(name string, err error) string {
	switch {
	case apperrors.Is(err, apperrors.NotFound):
		return msgUnknownApplication(name)
	case apperrors.Is(err, apperrors.InvalidInput):
		return msgInvalidInput
	default:
		return msgInternalError
	}
}
