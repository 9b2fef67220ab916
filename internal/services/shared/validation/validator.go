package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wrapper para go-playground/validator com funcionalidades customizadas
type Validator struct {
	validate *validator.Validate
}

// New cria nova instância do validador
func New() *Validator {
	validate := validator.New()

	registerCustomValidations(validate)

	// Configurar nomes de campos usando tags JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

// ValidateStruct valida uma struct
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError formata erros de validação para serem mais legíveis
func (v *Validator) formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string

		for _, fieldError := range validationErrors {
			messages = append(messages, v.getErrorMessage(fieldError))
		}

		return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
	}

	return err
}

// getErrorMessage retorna mensagem de erro personalizada para cada tipo de validação
func (v *Validator) getErrorMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()
	tag := fieldError.Tag()
	param := fieldError.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "e164":
		return fmt.Sprintf("%s must be a valid phone number in E.164 format", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// registerCustomValidations registra validações customizadas
func registerCustomValidations(validate *validator.Validate) {
	// Validação para formato E.164 de números de telefone
	validate.RegisterValidation("e164", validateE164)
}

// validateE164 valida formato E.164 para números de telefone
func validateE164(fl validator.FieldLevel) bool {
	phone := fl.Field().String()

	if !strings.HasPrefix(phone, "+") {
		return false
	}

	digits := phone[1:]
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}

	for _, char := range digits {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
