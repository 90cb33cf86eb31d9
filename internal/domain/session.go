package domain

import "time"

// Role — роль клиента витрины.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent" // продавец, доступ к дашборду товаров
)

func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAgent
}

// Session заменяет клиентский флаг userType: явный объект сессии,
// выдаваемый при логине и передаваемый обработчикам страниц.
type Session struct {
	Token     string
	UserID    string
	Role      Role
	CreatedAt time.Time
}

func NewSession(token, userID string, role Role) *Session {
	return &Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}
