// Package summary 지원서 목록을 하나의 요약 메시지(Document)로 렌더링합니다.
//
// 렌더링은 입력만으로 결과가 결정되는 순수 함수이며, 갱신 시각은 호출자가 전달합니다.
package summary

import (
	"cmp"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/application-board/internal/application"
	"github.com/darkkaiser/application-board/pkg/strutil"
)

const (
	Title  = "📋 Application Overview"
	Intro  = "Below is the current status of all applications. If an application is not open, don't worry, it will open soon."
	Footer = "Last updated"

	// Color 요약 메시지의 강조 색상(#5865F2)입니다.
	Color = 0x5865F2

	// ClosedNotice Closed 상태의 지원서에 표시되는 안내 문구입니다.
	ClosedNotice = "This application is currently closed. Please check back later."

	// MaxSections 하나의 메시지에 표시할 수 있는 최대 섹션 수입니다. (Discord Embed 필드 제한)
	MaxSections = 25

	// MaxSectionValue 섹션 본문의 최대 글자 수입니다. (Discord Embed 필드 값 제한)
	MaxSectionValue = 1024

	// MaxEmbedTotal 제목, 소개, 푸터, 모든 섹션 이름과 본문을 합한 최대 글자 수입니다. (Discord Embed 전체 제한)
	MaxEmbedTotal = 6000
)

const (
	closedValue     = "**Status:** ❌ **Closed**\n" + ClosedNotice
	linkUnavailable = "(link too long to display)"
)

// Document 플랫폼에 독립적인 요약 메시지입니다.
type Document struct {
	Title     string
	Intro     string
	Color     int
	Footer    string
	Timestamp time.Time
	Sections  []Section

	// Omitted 섹션 수 제한으로 표시하지 못한 지원서 개수입니다.
	Omitted int
}

// Section 지원서 한 건에 해당하는 메시지 구역입니다.
type Section struct {
	Name  string
	Value string
}

// Render 지원서 목록을 저장소 순서대로 요약 메시지로 변환합니다.
//
// 결과는 항상 Discord Embed 제한을 만족합니다. 섹션 본문은 MaxSectionValue, 전체 글자 수는
// MaxEmbedTotal을 넘지 않으며, 넘치는 만큼 설명을 줄입니다. 설명을 모두 줄여도 넘치면
// 뒤쪽 섹션부터 생략하고 Omitted에 더합니다.
func Render(records []application.Record, updatedAt time.Time) Document {
	doc := Document{
		Title:     Title,
		Intro:     Intro,
		Color:     Color,
		Footer:    Footer,
		Timestamp: updatedAt,
	}

	shown := records
	if len(shown) > MaxSections {
		doc.Omitted = len(shown) - MaxSections
		shown = shown[:MaxSections]
	}

	layouts := make([]layout, 0, len(shown))
	fixed := runeCount(doc.Title) + runeCount(doc.Intro) + runeCount(doc.Footer)
	for _, r := range shown {
		l := newLayout(r)
		layouts = append(layouts, l)
		fixed += l.fixedRunes()
	}

	for len(layouts) > 0 && fixed > MaxEmbedTotal {
		fixed -= layouts[len(layouts)-1].fixedRunes()
		layouts = layouts[:len(layouts)-1]
		doc.Omitted++
	}

	wants := make([]int, len(layouts))
	for i, l := range layouts {
		wants[i] = l.want()
	}
	allot := shareBudget(wants, MaxEmbedTotal-fixed)

	doc.Sections = make([]Section, 0, len(layouts))
	for i, l := range layouts {
		doc.Sections = append(doc.Sections, l.section(allot[i]))
	}

	return doc
}

// layout 섹션 하나를 설명 길이와 무관한 부분(이름, 본문 틀)과 설명으로 나눈 것입니다.
type layout struct {
	name        string
	open        bool
	description string
	link        string

	// frame 설명을 제외한 본문의 글자 수
	frame int
}

func newLayout(r application.Record) layout {
	l := layout{name: "📂 " + r.Name}
	if !r.IsOpen() {
		l.frame = runeCount(closedValue)
		return l
	}

	l.open = true
	l.description = r.Description
	if runeCount(r.Link) <= application.MaxLinkLength {
		l.link = r.Link
	}
	l.frame = runeCount(openValue("", l.link))

	return l
}

func (l layout) fixedRunes() int {
	return runeCount(l.name) + l.frame
}

// want 섹션 본문 제한 안에서 설명에 쓸 수 있는 최대 글자 수입니다.
func (l layout) want() int {
	if !l.open {
		return 0
	}
	return min(runeCount(l.description), max(MaxSectionValue-l.frame, 0))
}

func (l layout) section(descriptionRunes int) Section {
	if !l.open {
		return Section{Name: l.name, Value: closedValue}
	}
	return Section{Name: l.name, Value: openValue(strutil.Truncate(l.description, descriptionRunes), l.link)}
}

// shareBudget budget을 wants에 나눠 줍니다. 합이 budget 이하이면 요청대로 주고,
// 넘으면 짧은 요청부터 채운 뒤 남은 몫을 긴 요청들에 똑같이 나눕니다.
func shareBudget(wants []int, budget int) []int {
	allot := make([]int, len(wants))
	budget = max(budget, 0)

	pending := make([]int, 0, len(wants))
	for i, w := range wants {
		if w > 0 {
			pending = append(pending, i)
		}
	}
	slices.SortStableFunc(pending, func(a, b int) int {
		return cmp.Compare(wants[a], wants[b])
	})

	for k, i := range pending {
		share := budget / (len(pending) - k)
		allot[i] = min(wants[i], share)
		budget -= allot[i]
	}

	return allot
}

func openValue(description, link string) string {
	linkText := linkUnavailable
	if link != "" {
		linkText = fmt.Sprintf("[Click here](%s)", link)
	}
	return fmt.Sprintf("**Status:** ✅ **Open**\n**Description:** %s\n**Link:** %s", description, linkText)
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
