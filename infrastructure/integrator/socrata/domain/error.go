package socratadomain

// ErrorResponse representa o corpo de erro devolvido pela API SODA
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HasMessage indica se o corpo decodificado parece um erro da API
func (e *ErrorResponse) HasMessage() bool {
	return e != nil && (e.Message != "" || e.Code != "")
}
