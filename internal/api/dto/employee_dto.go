package dto

import (
	"bytes"
	"encoding/json"

	"github.com/spec-kit/employee-service/internal/domain"
)

var requiredKeys = []string{"firstName", "lastName", "email", "phone"}

// EmployeeRequest payload for create and update. Unknown fields are ignored.
type EmployeeRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=6,max=10"`
	LastName  string  `json:"lastName"  validate:"required,min=6,max=10"`
	Email     string  `json:"email"     validate:"required,email"`
	Phone     string  `json:"phone"     validate:"required,lkphone"`
	Gender    *string `json:"gender"    validate:"omitnil,oneof=F M"`

	// missing holds the required keys that were absent or null in the
	// decoded body. Nil for requests built in code.
	missing map[string]bool
}

// UnmarshalJSON decodes the payload and remembers which required keys were
// absent or null. An explicit "gender": null is kept as an empty gender so
// that it fails the gender rule instead of passing as absent.
func (r *EmployeeRequest) UnmarshalJSON(data []byte) error {
	type plain EmployeeRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = EmployeeRequest(decoded)
	r.missing = make(map[string]bool, len(requiredKeys))
	for _, key := range requiredKeys {
		if v, ok := raw[key]; !ok || isNull(v) {
			r.missing[key] = true
		}
	}
	if v, ok := raw["gender"]; ok && isNull(v) {
		empty := ""
		r.Gender = &empty
	}
	return nil
}

// Missing reports whether the JSON key was absent or null in the decoded body.
func (r EmployeeRequest) Missing(key string) bool {
	return r.missing[key]
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// ToDomain maps the request onto an Employee without an ID.
func (r EmployeeRequest) ToDomain() domain.Employee {
	emp := domain.Employee{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		emp.Gender = &g
	}
	return emp
}

// EmployeeResponse is the JSON shape of a stored employee.
type EmployeeResponse struct {
	ID        string  `json:"_id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Gender    *string `json:"gender,omitempty"`
}

// NewEmployeeResponse converts a domain employee.
func NewEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Email:     emp.Email,
		Phone:     emp.Phone,
	}
	if emp.Gender != nil {
		g := string(*emp.Gender)
		resp.Gender = &g
	}
	return resp
}

// CreatedResponse is returned by POST /api/employees.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorMessage is one entry of a validation failure body.
type ErrorMessage struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body: {"errors":[{"message":...}]}.
type ValidationErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}
