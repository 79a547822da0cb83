package entity

// User usuario del sistema; solo se usa para iniciar sesión.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	RoleID       int
}
