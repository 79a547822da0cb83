package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest alta de servicio. Price acepta número o string decimal.
type CreateServiceRequest struct {
	Name        string           `json:"service_name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Duration    int              `json:"duration" validate:"required,gt=0"`
}

// ServiceResponse fila del listado de servicios.
type ServiceResponse struct {
	ID          int64           `json:"service_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
}
