package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/repository"
	"github.com/spec-kit/employee-service/internal/validation"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// Messages returned to clients when the store fails.
const (
	msgListFailed   = "Error retrieving data"
	msgGetFailed    = "Error retrieving employee"
	msgCreateFailed = "Error adding employee"
	msgUpdateFailed = "Error updating employee"
	msgDeleteFailed = "Error deleting employee"
	resourceName    = "Employee"
)

// EmployeeDependencies encapsulates collaborators of EmployeeService.
type EmployeeDependencies struct {
	Repo       repository.EmployeeRepository
	Validator  *validation.Validator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// EmployeeService validates payloads, persists employees and announces
// successful mutations.
type EmployeeService struct {
	repo       repository.EmployeeRepository
	validator  *validation.Validator
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewEmployeeService constructs the service. Dispatcher, Logger and Metrics
// are optional.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	return &EmployeeService{
		repo:       deps.Repo,
		validator:  v,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// List returns every employee in store order.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(msgListFailed, err)
	}
	return list, nil
}

// Get fetches one employee. Malformed and unknown ids are both NOT_FOUND;
// the repository sentinel stays reachable through errors.Is.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, msgGetFailed)
	}
	return emp, nil
}

// Create validates req and stores a new employee.
func (s *EmployeeService) Create(ctx context.Context, req dto.EmployeeRequest) (*domain.Employee, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, req.ToDomain())
	if err != nil {
		return nil, apperrors.NewStorageError(msgCreateFailed, err)
	}
	s.publish(ctx, events.NewEvent(events.EventEmployeeCreated, created.ID, snapshot(created)))
	return created, nil
}

// Update validates req and replaces the stored fields of employee id.
func (s *EmployeeService) Update(ctx context.Context, id string, req dto.EmployeeRequest) (*domain.Employee, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, req.ToDomain())
	if err != nil {
		return nil, s.mapLookupError(err, msgUpdateFailed)
	}
	s.publish(ctx, events.NewEvent(events.EventEmployeeUpdated, updated.ID, snapshot(updated)))
	return updated, nil
}

// Delete removes employee id. A miss is reported in the result, not as an
// error; a malformed id is NOT_FOUND.
func (s *EmployeeService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, s.mapLookupError(err, msgDeleteFailed)
	}
	if res.IsSuccessful {
		s.publish(ctx, events.NewEvent(events.EventEmployeeDeleted, id, nil))
	}
	return res, nil
}

func (s *EmployeeService) validate(req dto.EmployeeRequest) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}
	var violations validation.Errors
	if errors.As(err, &violations) {
		return apperrors.NewValidationError(violations)
	}
	return apperrors.NewInternalError(err)
}

func (s *EmployeeService) mapLookupError(err error, storageMsg string) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrMalformedID) {
		return apperrors.NewNotFound(resourceName, err)
	}
	return apperrors.NewStorageError(storageMsg, err)
}

// publish never fails the caller; subscriber errors are logged.
func (s *EmployeeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, event)
	s.metrics.RecordEvent(string(event.Type), err == nil)
	if err != nil {
		s.logger.Warn("event subscribers failed",
			zap.String("type", string(event.Type)),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
	}
}

func snapshot(emp *domain.Employee) events.EmployeeSnapshot {
	snap := events.EmployeeSnapshot{
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Email:     emp.Email,
		Phone:     emp.Phone,
	}
	if emp.Gender != nil {
		g := string(*emp.Gender)
		snap.Gender = &g
	}
	return snap
}
