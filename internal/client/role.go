package client

import (
	"slices"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/pkg/jwt"
)

// RoleFromToken lee role_id del token SIN verificar la firma.
// Solo decide qué comandos ofrecer; el servidor vuelve a comprobar el rol en cada petición.
func RoleFromToken(token string) (int, error) {
	id, err := jwt.ParseUnverified(token)
	if err != nil {
		return 0, err
	}
	return id.RoleID, nil
}

// CanWrite indica si el rol puede crear, borrar y cobrar.
func CanWrite(role int) bool {
	return slices.Contains(entity.WriteRoles(), role)
}

// RoleName nombre legible del rol.
func RoleName(role int) string {
	for _, r := range entity.DefaultRoles() {
		if r.ID == role {
			return r.Name
		}
	}
	return "desconocido"
}
