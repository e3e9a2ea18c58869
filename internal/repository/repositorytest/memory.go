// Package repositorytest provides an in-memory EmployeeRepository for tests
// of the layers above the document store.
package repositorytest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
)

// Memory keeps employees in insertion order. Err, when set, is returned by
// every call.
type Memory struct {
	mu    sync.Mutex
	order []string
	byID  map[string]domain.Employee
	Err   error
}

var _ repository.EmployeeRepository = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{byID: make(map[string]domain.Employee)}
}

// List returns every employee in insertion order.
func (m *Memory) List(_ context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Employee, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

// Get returns the employee with id, ErrMalformedID or ErrNotFound.
func (m *Memory) Get(_ context.Context, id string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(id); err != nil {
		return nil, err
	}
	emp, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &emp, nil
}

// Create stores emp under a fresh ObjectID hex id.
func (m *Memory) Create(_ context.Context, emp domain.Employee) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	emp.ID = primitive.NewObjectID().Hex()
	m.byID[emp.ID] = emp
	m.order = append(m.order, emp.ID)
	return &emp, nil
}

// Update overwrites the scalar fields; gender only when emp carries one.
func (m *Memory) Update(_ context.Context, id string, emp domain.Employee) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(id); err != nil {
		return nil, err
	}
	current, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	current.FirstName = emp.FirstName
	current.LastName = emp.LastName
	current.Email = emp.Email
	current.Phone = emp.Phone
	if emp.Gender != nil {
		current.Gender = emp.Gender
	}
	m.byID[id] = current
	return &current, nil
}

// Delete removes id; a miss is a DeleteResult, not an error.
func (m *Memory) Delete(_ context.Context, id string) (domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(id); err != nil {
		return domain.DeleteResult{}, err
	}
	if _, ok := m.byID[id]; !ok {
		return domain.DeleteResult{IsSuccessful: false, Message: "Invalid employee"}, nil
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return domain.DeleteResult{IsSuccessful: true, Message: "Employee deleted successfully"}, nil
}

func (m *Memory) check(id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrMalformedID
	}
	return nil
}
