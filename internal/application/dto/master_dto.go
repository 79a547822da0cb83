package dto

// CreateMasterRequest alta de maestro. email opcional.
type CreateMasterRequest struct {
	Name  string `json:"master_name" validate:"required"`
	Phone string `json:"phone" validate:"required,max=15"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// MasterResponse fila del listado de maestros.
type MasterResponse struct {
	ID    int64  `json:"master_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
