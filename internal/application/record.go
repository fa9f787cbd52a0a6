// Package application 지원서(Application) 게시 상태의 엔티티 모델, 상태 전이, 영속화를 담당합니다.
//
// 각 지원서는 이름으로 식별되며 Open 또는 Closed 상태를 가집니다.
// Closed 상태의 지원서는 설명과 링크를 가지지 않으며, Open 상태의 지원서는 둘 다 비어 있지 않습니다.
package application

// Status 지원서의 게시 상태입니다.
type Status string

const (
	StatusClosed Status = "Closed"
	StatusOpen   Status = "Open"
)

// Valid 정의된 상태 값인지 확인합니다.
func (s Status) Valid() bool {
	return s == StatusClosed || s == StatusOpen
}

// Record 하나의 지원서 상태입니다.
type Record struct {
	Name        string
	Status      Status
	Description string // Open 상태에서만 의미가 있습니다.
	Link        string // Open 상태에서만 의미가 있습니다.
}

// IsOpen 지원서가 열려 있는지 확인합니다.
func (r Record) IsOpen() bool {
	return r.Status == StatusOpen
}
