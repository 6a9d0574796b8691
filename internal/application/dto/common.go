package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Current  *int   `json:"current_quantity,omitempty"` // solo en INSUFFICIENT_STOCK
}

var validate = validator.New()

// Validate valida un DTO contra sus tags `validate`.
func Validate(in any) error {
	return validate.Struct(in)
}
