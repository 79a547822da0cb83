package entity

// IDs fijos de los roles sembrados al arrancar.
const (
	RoleAdmin  = 1 // Administrador: permisos "all"
	RoleStaff  = 2 // Trabajador: permisos "edit"
	RoleViewer = 3 // Usuario: permisos "view"
)

// Etiquetas de permiso (granularidad gruesa).
const (
	PermissionAll  = "all"
	PermissionEdit = "edit"
	PermissionView = "view"
)

// Role nivel de permisos de un usuario.
type Role struct {
	ID          int
	Name        string
	Permissions string
}

// DefaultRoles roles que se insertan si no existen.
func DefaultRoles() []Role {
	return []Role{
		{ID: RoleAdmin, Name: "Administrador", Permissions: PermissionAll},
		{ID: RoleStaff, Name: "Trabajador", Permissions: PermissionEdit},
		{ID: RoleViewer, Name: "Usuario", Permissions: PermissionView},
	}
}

// ReadRoles roles con acceso a las operaciones de lectura.
func ReadRoles() []int { return []int{RoleAdmin, RoleStaff, RoleViewer} }

// WriteRoles roles con acceso a altas, bajas y cobros.
func WriteRoles() []int { return []int{RoleAdmin, RoleStaff} }
