package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje (p. ej. tras un borrado).
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse resultado de un borrado con cascada.
type DeleteResponse struct {
	Message      string `json:"message"`
	ItemsDeleted int64  `json:"items_deleted"`
	SalesDeleted int64  `json:"sales_deleted"`
}
