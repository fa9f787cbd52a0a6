package application

import (
	"strings"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	applog "github.com/darkkaiser/application-board/pkg/log"
)

const component = "application.store"

// Blob 지원서 데이터를 통째로 읽고 쓰는 영속 저장소입니다.
// 저장된 적이 없으면 Load는 NotFound 타입의 에러를 반환해야 합니다.
type Blob interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store 지원서 이름을 키로 하는 순서 있는 상태 저장소입니다.
//
// 등록 순서가 곧 요약 메시지의 표시 순서이며, 실행 중에는 지원서가 추가되거나 삭제되지 않습니다.
// 동시성 제어를 하지 않으므로 단일 고루틴(board 워커)에서만 사용해야 합니다.
type Store struct {
	blob Blob

	names   []string
	records map[string]*Record
}

// Load 저장된 지원서 데이터를 읽어 Store를 생성합니다.
//
// 저장된 데이터가 없으면 seed의 이름들로 모두 Closed 상태인 기본 목록을 만들고 즉시 저장합니다.
// 데이터가 있지만 해석할 수 없으면 ParsingFailed 타입의 에러를 반환합니다.
func Load(blob Blob, seed []string) (*Store, error) {
	data, err := blob.Load()
	if err != nil {
		if !apperrors.Is(err, apperrors.NotFound) {
			return nil, apperrors.Wrap(err, apperrors.System, "지원서 데이터를 읽을 수 없습니다")
		}

		s, err := newSeededStore(blob, seed)
		if err != nil {
			return nil, err
		}
		if err := s.Persist(); err != nil {
			return nil, err
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"count": len(s.names),
		}).Info("저장된 지원서 데이터가 없어 기본 목록을 생성했습니다")

		return s, nil
	}

	records, err := decode(data)
	if err != nil {
		return nil, err
	}

	s := &Store{
		blob:    blob,
		names:   make([]string, 0, len(records)),
		records: make(map[string]*Record, len(records)),
	}
	for i := range records {
		r := records[i]
		s.names = append(s.names, r.Name)
		s.records[r.Name] = &r
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"count": len(s.names),
		"open":  s.countOpen(),
	}).Info("지원서 데이터 로드 완료")

	return s, nil
}

func newSeededStore(blob Blob, seed []string) (*Store, error) {
	if len(seed) == 0 {
		return nil, apperrors.New(apperrors.InvalidInput, "기본 지원서 목록이 비어 있습니다")
	}

	s := &Store{
		blob:    blob,
		names:   make([]string, 0, len(seed)),
		records: make(map[string]*Record, len(seed)),
	}
	for _, name := range seed {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.New(apperrors.InvalidInput, "기본 지원서 목록에 빈 이름이 포함되어 있습니다")
		}
		if _, exists := s.records[name]; exists {
			return nil, apperrors.Newf(apperrors.InvalidInput, "기본 지원서 목록에 중복된 이름이 있습니다: '%s'", name)
		}

		s.names = append(s.names, name)
		s.records[name] = &Record{Name: name, Status: StatusClosed}
	}

	return s, nil
}

// Get 지정된 이름의 지원서 상태를 반환합니다.
func (s *Store) Get(name string) (Record, error) {
	r, ok := s.records[name]
	if !ok {
		return Record{}, NewErrUnknownApplication(name)
	}
	return *r, nil
}

// Len 지원서 개수를 반환합니다.
func (s *Store) Len() int {
	return len(s.names)
}

// Names 지원서 이름 목록을 등록 순서대로 반환합니다.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Records 모든 지원서 상태의 복사본을 등록 순서대로 반환합니다.
func (s *Store) Records() []Record {
	records := make([]Record, 0, len(s.names))
	for _, name := range s.names {
		records = append(records, *s.records[name])
	}
	return records
}

// SetOpen 지원서를 Open 상태로 바꾸고 설명과 링크를 교체합니다. 저장은 하지 않습니다.
func (s *Store) SetOpen(name, description, link string) error {
	r, ok := s.records[name]
	if !ok {
		return NewErrUnknownApplication(name)
	}

	r.Status = StatusOpen
	r.Description = description
	r.Link = link

	return nil
}

// SetClosed 지원서를 Closed 상태로 바꾸고 설명과 링크를 비웁니다. 저장은 하지 않습니다.
func (s *Store) SetClosed(name string) error {
	r, ok := s.records[name]
	if !ok {
		return NewErrUnknownApplication(name)
	}

	r.Status = StatusClosed
	r.Description = ""
	r.Link = ""

	return nil
}

// Persist 현재 상태 전체를 등록 순서대로 직렬화하여 원자적으로 저장합니다.
func (s *Store) Persist() error {
	data, err := encode(s.Records())
	if err != nil {
		return NewErrPersistFailed(err)
	}

	if err := s.blob.Save(data); err != nil {
		return NewErrPersistFailed(err)
	}

	return nil
}

// CheckInvariant 모든 지원서가 상태 불변식을 만족하는지 확인합니다.
//   - Closed: 설명과 링크가 비어 있음
//   - Open: 설명과 링크가 비어 있지 않음
func (s *Store) CheckInvariant() error {
	for _, name := range s.names {
		r := s.records[name]
		switch r.Status {
		case StatusClosed:
			if r.Description != "" || r.Link != "" {
				return NewErrInvariantViolated(name, r.Status)
			}
		case StatusOpen:
			if strings.TrimSpace(r.Description) == "" || strings.TrimSpace(r.Link) == "" {
				return NewErrInvariantViolated(name, r.Status)
			}
		default:
			return NewErrInvariantViolated(name, r.Status)
		}
	}
	return nil
}

func (s *Store) countOpen() int {
	n := 0
	for _, r := range s.records {
		if r.IsOpen() {
			n++
		}
	}
	return n
}
