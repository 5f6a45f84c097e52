package models

import "strings"

// UserRole - роль пользователя со строгой иерархией полномочий
type UserRole string

const (
	RoleViewer   UserRole = "Viewer"
	RoleOperator UserRole = "Operator"
	RoleAdmin    UserRole = "Admin"
)

// roleRank задает порядок ролей для проверки полномочий
var roleRank = map[UserRole]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// AtLeast сообщает, покрывает ли роль минимально требуемую.
// Неизвестная роль не покрывает ничего.
func (r UserRole) AtLeast(min UserRole) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

// RoleFromEmail выводит роль из префикса email, как это делал
// оригинальный экран входа: admin* -> Admin, operator* -> Operator,
// остальные -> Viewer
func RoleFromEmail(email string) UserRole {
	local := strings.ToLower(email)
	switch {
	case strings.HasPrefix(local, "admin"):
		return RoleAdmin
	case strings.HasPrefix(local, "operator"):
		return RoleOperator
	default:
		return RoleViewer
	}
}

// UserStatus - статус учетной записи
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// PlaceholderAvatarURL - стандартный аватар, назначаемый новым пользователям
const PlaceholderAvatarURL = `data:image/svg+xml;utf8,<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="35" r="20" fill="%2394a3b8"/><path d="M15 95 A 40 40 0 0 1 85 95 Z" fill="%2394a3b8"/></svg>`

// User - учетная запись оператора панели мониторинга.
// Email служит идентификатором.
type User struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	AvatarURL string     `json:"avatar_url"`
	Status    UserStatus `json:"status"`
}
