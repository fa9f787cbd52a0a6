package application

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	// MaxDescriptionLength 지원서 설명의 최대 글자 수입니다. (Discord 모달 입력 항목 제한)
	MaxDescriptionLength = 4000

	// MaxLinkLength 지원서 링크의 최대 글자 수입니다.
	// 요약 메시지 섹션 본문(1024자)에 링크가 잘리지 않고 들어가야 합니다.
	MaxLinkLength = 512
)

// Open 지원서를 Open 상태로 전이합니다. 현재 상태와 관계없이 설명과 링크를 교체합니다.
//
// 설명과 링크는 앞뒤 공백을 제거한 뒤 비어 있지 않아야 하며, 링크는 http(s) URL이어야 합니다.
// 설명은 MaxDescriptionLength, 링크는 MaxLinkLength 글자를 넘을 수 없습니다.
// 조건을 만족하지 않으면 InvalidInput 타입의 에러를 반환하고 상태를 변경하지 않습니다.
func Open(s *Store, name, description, link string) (Record, error) {
	if _, err := s.Get(name); err != nil {
		return Record{}, err
	}

	description = strings.TrimSpace(description)
	link = strings.TrimSpace(link)

	if description == "" {
		return Record{}, NewErrInvalidTransition(name, "설명이 비어 있습니다")
	}
	if link == "" {
		return Record{}, NewErrInvalidTransition(name, "링크가 비어 있습니다")
	}
	if err := validate.Var(description, fmt.Sprintf("max=%d", MaxDescriptionLength)); err != nil {
		return Record{}, NewErrInvalidTransition(name, fmt.Sprintf("설명은 %d자를 넘을 수 없습니다", MaxDescriptionLength))
	}
	if err := validate.Var(link, fmt.Sprintf("max=%d", MaxLinkLength)); err != nil {
		return Record{}, NewErrInvalidTransition(name, fmt.Sprintf("링크는 %d자를 넘을 수 없습니다", MaxLinkLength))
	}
	if err := validate.Var(link, "http_url"); err != nil {
		return Record{}, NewErrInvalidTransition(name, "링크는 http:// 또는 https://로 시작하는 URL이어야 합니다")
	}

	if err := s.SetOpen(name, description, link); err != nil {
		return Record{}, err
	}
	if err := s.CheckInvariant(); err != nil {
		return Record{}, err
	}

	return s.Get(name)
}

// Close 지원서를 Closed 상태로 전이합니다. 이미 Closed 상태여도 에러 없이 같은 결과를 반환합니다.
func Close(s *Store, name string) (Record, error) {
	if err := s.SetClosed(name); err != nil {
		return Record{}, err
	}
	if err := s.CheckInvariant(); err != nil {
		return Record{}, err
	}

	return s.Get(name)
}
