package dto

// ErrorResponse cuerpo de error HTTP de las rutas administrativas.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta {status, message} de la API pública del widget.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK construye una StatusResponse de éxito.
func OK(message string) StatusResponse {
	return StatusResponse{Status: "success", Message: message}
}

// Fail construye una StatusResponse de error.
func Fail(message string) StatusResponse {
	return StatusResponse{Status: "error", Message: message}
}
