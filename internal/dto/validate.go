package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs go-playground/validator tags on a request DTO. It is called
// by the form layer before any network request and by the server handlers
// after binding, so invalid payloads never reach a store or a repository.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

// FieldErrors flattens a validation error into a field → failed-tag map for
// the apierror validation envelope. Returns nil for non-validation errors.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
