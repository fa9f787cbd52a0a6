package board

import (
	"context"
)

// 플랫폼 컴포넌트 식별자입니다. 디스코드 어댑터가 이벤트를 Interaction으로 변환할 때 사용합니다.
const (
	OpenSelectID  = "application_open_select"
	CloseSelectID = "application_close_select"

	// FormIDPrefix 지원서 열기 폼의 식별자 접두사입니다. 뒤에 지원서 이름이 붙습니다.
	FormIDPrefix = "modal_"

	FieldDescription = "description"
	FieldLink        = "link"
)

// Kind 사용자 상호작용의 종류입니다.
type Kind int

const (
	// KindUnknown 이 봇에 속하지만 해석할 수 없는 상호작용입니다. 오류 안내 응답만 받습니다.
	KindUnknown Kind = iota

	KindOpenCommand
	KindCloseCommand
	KindOpenSelected
	KindCloseSelected
	KindFormSubmitted
)

func (k Kind) String() string {
	switch k {
	case KindOpenCommand:
		return "open_command"
	case KindCloseCommand:
		return "close_command"
	case KindOpenSelected:
		return "open_selected"
	case KindCloseSelected:
		return "close_selected"
	case KindFormSubmitted:
		return "form_submitted"
	default:
		return "unknown"
	}
}

// Interaction 플랫폼 이벤트를 해석한 결과입니다.
type Interaction struct {
	Kind    Kind
	UserID  string
	RoleIDs []string

	// Application 선택하거나 폼을 제출한 지원서 이름입니다. 명령어에서는 비어 있습니다.
	Application string

	// 폼 제출 시에만 채워집니다.
	Description string
	Link        string
}

// Choices 사용자에게 보여줄 선택 메뉴입니다.
type Choices struct {
	CustomID    string
	Prompt      string
	Placeholder string
	Options     []string
}

// Form 사용자에게 보여줄 입력 폼입니다.
type Form struct {
	CustomID string
	Title    string
	Fields   []FormField
}

// FormField 입력 폼의 항목입니다.
type FormField struct {
	CustomID  string
	Label     string
	Paragraph bool
	Required  bool

	// MaxLength 입력할 수 있는 최대 글자 수입니다. 0이면 플랫폼 기본값을 따릅니다.
	MaxLength int
}

// FormID 지원서 이름으로 폼 식별자를 만듭니다.
func FormID(name string) string {
	return FormIDPrefix + name
}

// Responder 하나의 상호작용에 응답하는 수단입니다. 상호작용마다 정확히 한 번만 호출되어야 합니다.
// 모든 응답은 요청한 사용자에게만 보입니다.
type Responder interface {
	Reply(ctx context.Context, content string) error
	PresentChoices(ctx context.Context, choices Choices) error
	ShowForm(ctx context.Context, form Form) error
}
