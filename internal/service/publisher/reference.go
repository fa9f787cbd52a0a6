package publisher

import (
	"encoding/json"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// Blob 메시지 참조를 통째로 읽고 쓰는 영속 저장소입니다.
// 저장된 적이 없으면 Load는 NotFound 타입의 에러를 반환해야 합니다.
type Blob interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Reference 현재 게시되어 있는 요약 메시지의 식별자를 보관하는 단일 값 저장소입니다.
// 최초 실행 시에는 비어 있고, 처음 게시할 때 설정되며 명시적으로 삭제되지 않습니다.
type Reference struct {
	blob Blob
	ref  MessageRef
}

type storedReference struct {
	MessageID string `json:"messageId"`
}

// LoadReference 저장된 메시지 참조를 읽어옵니다.
// 저장된 적이 없거나 messageId가 null/빈 문자열이면 빈 참조를 반환합니다.
func LoadReference(blob Blob) (*Reference, error) {
	r := &Reference{blob: blob}

	data, err := blob.Load()
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return r, nil
		}
		return nil, apperrors.Wrap(err, apperrors.System, "메시지 참조 데이터를 읽을 수 없습니다")
	}

	if !gjson.ValidBytes(data) {
		return nil, NewErrCorruptReference("JSON 형식이 올바르지 않습니다")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, NewErrCorruptReference("최상위 값이 JSON 객체가 아닙니다")
	}

	id := root.Get("messageId")
	switch id.Type {
	case gjson.Null:
	case gjson.String:
		r.ref = MessageRef(id.Str)
	case gjson.Number:
		// 숫자로 기록된 예전 형식을 허용합니다. 정밀도 손실을 피하기 위해 원문을 사용합니다.
		r.ref = MessageRef(id.Raw)
	default:
		return nil, NewErrCorruptReference("messageId 값이 문자열이 아닙니다: " + id.Raw)
	}

	return r, nil
}

// Get 현재 참조를 반환합니다. 비어 있으면 false를 반환합니다.
func (r *Reference) Get() (MessageRef, bool) {
	return r.ref, r.ref != ""
}

// Set 참조를 교체하고 즉시 저장합니다.
// 저장에 실패해도 메모리의 참조는 교체된 상태로 유지하여 같은 프로세스 안에서 중복 게시를 막습니다.
func (r *Reference) Set(ref MessageRef) error {
	r.ref = ref

	data, err := json.Marshal(storedReference{MessageID: string(ref)})
	if err != nil {
		return NewErrReferencePersistFailed(err, ref)
	}
	if err := r.blob.Save(data); err != nil {
		return NewErrReferencePersistFailed(err, ref)
	}

	return nil
}
