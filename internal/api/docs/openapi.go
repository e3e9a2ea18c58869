// Package docs builds the OpenAPI description of the employee API and the
// page that renders it.
package docs

import (
	_ "embed"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	// Title and Description mirror what the UI shows in its header.
	Title       = "Employee Management API"
	Description = "The application expose API endpoints that are use to manage employees"

	jsonContent = "application/json"
	textContent = "text/plain"
)

//go:embed swagger.html
var swaggerUI []byte

// SwaggerUI returns the HTML page that renders openapi.json.
func SwaggerUI() []byte {
	return swaggerUI
}

// Info describes the running deployment.
type Info struct {
	Version   string
	ServerURL string
}

// NewOpenAPI builds the document for the /api/employees routes.
func NewOpenAPI(info Info) *openapi3.T {
	employee := employeeSchema(true)
	input := employeeSchema(false)
	validationErr := openapi3.NewObjectSchema().WithProperty("errors",
		openapi3.NewArraySchema().WithItems(
			openapi3.NewObjectSchema().WithProperty("message", openapi3.NewStringSchema()),
		),
	)
	created := openapi3.NewObjectSchema().WithProperty("id", openapi3.NewStringSchema())

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     info.Version,
			Description: Description,
		},
		Servers: openapi3.Servers{{URL: info.ServerURL}},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Employee":        openapi3.NewSchemaRef("", employee),
				"EmployeeInput":   openapi3.NewSchemaRef("", input),
				"ValidationError": openapi3.NewSchemaRef("", validationErr),
				"Created":         openapi3.NewSchemaRef("", created),
			},
		},
		Paths: &openapi3.Paths{},
	}

	employeeRef := openapi3.NewSchemaRef("#/components/schemas/Employee", employee)
	inputRef := openapi3.NewSchemaRef("#/components/schemas/EmployeeInput", input)
	validationRef := openapi3.NewSchemaRef("#/components/schemas/ValidationError", validationErr)
	createdRef := openapi3.NewSchemaRef("#/components/schemas/Created", created)

	body := &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(true).
		WithDescription("Employee fields. Unknown fields are ignored.").
		WithJSONSchemaRef(inputRef)}
	idParam := &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").
		WithDescription("Employee identifier (24 hex characters)").
		WithSchema(openapi3.NewStringSchema())}

	doc.Paths.Set("/api/employees", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listEmployees",
			Summary:     "Returns all employees",
			Tags:        []string{"employees"},
			Responses: responses(
				jsonResponse(http.StatusOK, "The list of employees", openapi3.NewSchemaRef("", openapi3.NewArraySchema().WithItems(employee))),
				textResponse(http.StatusInternalServerError, "Error retrieving data"),
			),
		},
		Post: &openapi3.Operation{
			OperationID: "createEmployee",
			Summary:     "Creates a new employee",
			Tags:        []string{"employees"},
			RequestBody: body,
			Responses: responses(
				jsonResponse(http.StatusOK, "The identifier of the new employee", createdRef),
				jsonResponse(http.StatusBadRequest, "Validation failed", validationRef),
				textResponse(http.StatusInternalServerError, "Error adding employee"),
			),
		},
	})

	doc.Paths.Set("/api/employees/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParam},
		Get: &openapi3.Operation{
			OperationID: "getEmployee",
			Summary:     "Returns one employee",
			Tags:        []string{"employees"},
			Responses: responses(
				jsonResponse(http.StatusOK, "The employee", employeeRef),
				textResponse(http.StatusNotFound, "Employee not found"),
				textResponse(http.StatusInternalServerError, "Error retrieving employee"),
			),
		},
		Put: &openapi3.Operation{
			OperationID: "updateEmployee",
			Summary:     "Replaces the fields of an employee",
			Tags:        []string{"employees"},
			RequestBody: body,
			Responses: responses(
				jsonResponse(http.StatusOK, "The updated employee", employeeRef),
				jsonResponse(http.StatusBadRequest, "Validation failed", validationRef),
				textResponse(http.StatusNotFound, "Employee not found"),
				textResponse(http.StatusInternalServerError, "Error updating employee"),
			),
		},
		Delete: &openapi3.Operation{
			OperationID: "deleteEmployee",
			Summary:     "Deletes an employee",
			Tags:        []string{"employees"},
			Responses: responses(
				jsonResponse(http.StatusOK, "Deleted", openapi3.NewSchemaRef("", openapi3.NewBoolSchema())),
				textResponse(http.StatusNotFound, "Employee not found"),
				textResponse(http.StatusInternalServerError, "Error deleting employee"),
			),
		},
	})

	return doc
}

func employeeSchema(withID bool) *openapi3.Schema {
	name := openapi3.NewStringSchema().WithMinLength(6).WithMaxLength(10)
	s := openapi3.NewObjectSchema().
		WithProperty("firstName", name).
		WithProperty("lastName", name).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("phone", openapi3.NewStringSchema().WithPattern(`^\+94[1-9]\d{8}$`)).
		WithProperty("gender", openapi3.NewStringSchema().WithEnum("F", "M"))
	s.Required = []string{"firstName", "lastName", "email", "phone"}
	if withID {
		s.WithProperty("_id", openapi3.NewStringSchema())
		s.Required = append(s.Required, "_id")
	}
	return s
}

type statusResponse struct {
	status int
	ref    *openapi3.ResponseRef
}

func responses(items ...statusResponse) *openapi3.Responses {
	out := &openapi3.Responses{}
	for _, item := range items {
		out.Set(strconv.Itoa(item.status), item.ref)
	}
	return out
}

func jsonResponse(status int, description string, schema *openapi3.SchemaRef) statusResponse {
	resp := openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema)
	return statusResponse{status: status, ref: &openapi3.ResponseRef{Value: resp}}
}

func textResponse(status int, description string) statusResponse {
	resp := openapi3.NewResponse().WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{textContent}))
	return statusResponse{status: status, ref: &openapi3.ResponseRef{Value: resp}}
}
