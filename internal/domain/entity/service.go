package entity

import "github.com/shopspring/decimal"

// Service servicio ofrecido por el salón. El nombre es único.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int // minutos
}
