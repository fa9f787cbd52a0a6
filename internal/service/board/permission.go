package board

// RoleWhitelist 관리 명령을 사용할 수 있는 역할 ID 목록입니다.
type RoleWhitelist map[string]struct{}

// NewRoleWhitelist 역할 ID 목록으로 RoleWhitelist를 생성합니다.
func NewRoleWhitelist(roleIDs []string) RoleWhitelist {
	w := make(RoleWhitelist, len(roleIDs))
	for _, id := range roleIDs {
		w[id] = struct{}{}
	}
	return w
}

// Allows 사용자의 역할 중 하나라도 목록에 있으면 true를 반환합니다.
func (w RoleWhitelist) Allows(roleIDs []string) bool {
	for _, id := range roleIDs {
		if _, ok := w[id]; ok {
			return true
		}
	}
	return false
}
