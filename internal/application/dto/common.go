package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito de las operaciones de escritura.
// ID es el identificador de la fila creada (0 en bajas y cobros sin fila nueva).
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
