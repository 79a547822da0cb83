package dto

// CreateClientRequest alta de cliente. birth_date opcional (YYYY-MM-DD).
type CreateClientRequest struct {
	Name      string  `json:"client_name" validate:"required"`
	Phone     string  `json:"phone" validate:"required,max=15"`
	BirthDate *string `json:"birth_date,omitempty"`
}

// ClientResponse fila del listado de clientes.
type ClientResponse struct {
	ID        int64   `json:"client_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	BirthDate *string `json:"birth_date"`
}
