package dto

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Response envolvente uniforme de TODAS las respuestas de la API.
// Los errores usan la misma forma con Success=false y el status HTTP
// correspondiente (400, 401, 403, 404, 500).
type Response struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data"`
	Message    string            `json:"message,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// OK respuesta exitosa con datos.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage respuesta exitosa con datos y mensaje.
func OKMessage(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// OKPage respuesta exitosa paginada.
func OKPage(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

// Fail respuesta de error con mensaje.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailFields respuesta de validación con detalle por campo.
func FailFields(message string, errs map[string]string) Response {
	return Response{Success: false, Message: message, Errors: errs}
}
