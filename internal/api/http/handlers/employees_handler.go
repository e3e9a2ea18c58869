package handlers

import (
	"bytes"
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

const invalidBodyMessage = "Invalid request body"

// EmployeeService is the behavior EmployeesHandler needs from the service layer.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, req dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id string, req dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

// EmployeesHandler exposes the employee CRUD endpoints.
type EmployeesHandler struct {
	employees EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	list, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewEmployeeResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	req, err := parseEmployeeRequest(c)
	if err != nil {
		return err
	}
	created, err := h.employees.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreatedResponse{ID: created.ID})
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.employees.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(emp))
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	req, err := parseEmployeeRequest(c)
	if err != nil {
		return err
	}
	updated, err := h.employees.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(updated))
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	res, err := h.employees.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if !res.IsSuccessful {
		return apperrors.NewNotFound("Employee", nil)
	}
	return c.JSON(res.IsSuccessful)
}

// parseEmployeeRequest decodes the body as JSON whatever the Content-Type.
// An empty body decodes as {} so that the validator reports every missing
// field.
func parseEmployeeRequest(c *fiber.Ctx) (dto.EmployeeRequest, error) {
	var req dto.EmployeeRequest
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := c.App().Config().JSONDecoder(body, &req); err != nil {
		return dto.EmployeeRequest{}, apperrors.NewValidationError([]string{invalidBodyMessage})
	}
	return req, nil
}
