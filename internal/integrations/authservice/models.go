package authservice

// Role роль аутентифицированного пользователя
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User аутентифицированный пользователь из AuthService
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	ProfessionalID *int64 `json:"professional_id,omitempty"` // Заполнено для сотрудников
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageProfessional возвращает true, если пользователь может управлять
// расписанием профессионала professionalID
// Администратор управляет всеми, сотрудник - только собой
func (u *User) CanManageProfessional(professionalID int64) bool {
	if u.IsAdmin() {
		return true
	}
	return u.ProfessionalID != nil && *u.ProfessionalID == professionalID
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
