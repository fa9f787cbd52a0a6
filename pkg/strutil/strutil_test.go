package strutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\r\n"))
	assert.False(t, IsBlank(" a "))
}

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", NormalizeSpaces("  hello   world  "))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sep      string
		expected []string
	}{
		{"일반", "a, , b,c", ",", []string{"a", "b", "c"}},
		{"빈 문자열", "", ",", nil},
		{"구분자만", " , ,", ",", nil},
		{"단일 항목", " 123 ", ",", []string{"123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, tt.sep))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"짧은 문자열은 그대로", "hello", 10, "hello"},
		{"정확히 최대 길이", "hello", 5, "hello"},
		{"초과 시 말줄임표", "hello world", 5, "hell…"},
		{"멀티바이트 문자", "가나다라마", 3, "가나…"},
		{"0 이하", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}

	t.Run("결과는 최대 길이를 넘지 않는다", func(t *testing.T) {
		long := strings.Repeat("x", 2000)
		assert.Equal(t, 1000, utf8.RuneCountInString(Truncate(long, 1000)))
	})
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcdefgh", "abcd***"},
		{"MTA5ODc2NTQzMjEwOTg3NjU0.GabcDe.xyz1234", "MTA5***1234"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskSensitiveData(tt.input))
		})
	}
}
