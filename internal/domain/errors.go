package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrClientNotFound      = errors.New("cliente no encontrado")
	ErrMasterNotFound      = errors.New("maestro no encontrado")
	ErrServiceNotFound     = errors.New("servicio no encontrado")
	ErrAppointmentNotFound = errors.New("cita no encontrada")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrMasterBusy          = errors.New("el maestro está ocupado en ese horario")
	ErrAlreadyPaid         = errors.New("la cita ya tiene un pago registrado")
	ErrClientMismatch      = errors.New("el cliente no corresponde a la cita")
	ErrInUse               = errors.New("el recurso está referenciado por otros registros")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
