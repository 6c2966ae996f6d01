// Package validation validates configuration and request structs through
// their `validate` struct tags.
//
//	type Request struct {
//	    Engine string `mapstructure:"engine" validate:"required,oneof=whisper assemblyai"`
//	}
//	err := validation.Validate(req)
//
// Failures come back as an INVALID_INPUT *errors.AppError whose "fields"
// detail lists each offending key.
package validation
