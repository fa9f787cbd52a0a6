package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleWhitelist_Allows(t *testing.T) {
	t.Parallel()

	w := NewRoleWhitelist([]string{adminRole, "609876543210987654"})

	tests := []struct {
		name    string
		roleIDs []string
		allowed bool
	}{
		{"허용된 역할 보유", []string{memberRole, adminRole}, true},
		{"허용되지 않은 역할만 보유", []string{memberRole}, false},
		{"역할 없음", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, w.Allows(tt.roleIDs))
		})
	}

	assert.False(t, NewRoleWhitelist(nil).Allows([]string{adminRole}), "빈 목록은 아무도 허용하지 않습니다")
}
