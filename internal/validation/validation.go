// Package validation enforces field constraints on employee payloads before
// they reach storage.
//
// Rules are declared as `validate` struct tags on dto.EmployeeRequest and
// checked with go-playground/validator. Every field is checked; the first
// failing rule of each field produces a message, and a name that is present
// but empty also reports its length rule. All messages are returned together
// in field-declaration order.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/employee-service/internal/api/dto"
)

// phonePattern matches a Sri Lankan number: +94, a non-zero digit, 8 digits.
var phonePattern = regexp.MustCompile(`^\+94[1-9]\d{8}$`)

// messages maps struct field -> failing tag -> client message.
var messages = map[string]map[string]string{
	"FirstName": {
		"required": "First name is required",
		"min":      "Minimum length is 6 characters",
		"max":      "Max length is 10 characters",
	},
	"LastName": {
		"required": "Last name is required",
		"min":      "Minimum length is 6 characters",
		"max":      "Max length is 10 characters",
	},
	"Email": {
		"required": "Email is required",
		"email":    "Invalid email address",
	},
	"Phone": {
		"required": "Phone number is required",
		"lkphone":  "This should be a valid Sri Lankan phone no",
	},
	"Gender": {
		"oneof": "Inavalid gender option",
	},
}

// lengthRule is rechecked on present-but-empty names so that an empty
// string reports both the required and the length message.
const lengthRule = "min=6,max=10"

// lengthChecked maps struct field -> JSON key for fields carrying lengthRule.
var lengthChecked = map[string]string{
	"FirstName": "firstName",
	"LastName":  "lastName",
}

// Errors is the ordered list of violations for a rejected payload.
type Errors []string

func (e Errors) Error() string {
	return "validation failed: " + strings.Join(e, "; ")
}

// Validator checks employee payloads.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom phone rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("lkphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate returns nil when req satisfies every rule, otherwise Errors.
// req is never modified.
func (v *Validator) Validate(req dto.EmployeeRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, messageFor(fe))
		if fe.Tag() != "required" {
			continue
		}
		key, ok := lengthChecked[fe.StructField()]
		if !ok || req.Missing(key) {
			continue
		}
		var lengthErrs validator.ValidationErrors
		if errors.As(v.validate.Var(fe.Value(), lengthRule), &lengthErrs) {
			for _, le := range lengthErrs {
				out = append(out, messages[fe.StructField()][le.Tag()])
			}
		}
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.StructField()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fe.Field() + " is invalid"
}
