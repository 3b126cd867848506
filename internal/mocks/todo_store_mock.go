package mocks

import (
	"todosapp/internal/models"
	"todosapp/internal/stores"

	"github.com/stretchr/testify/mock"
)

type TodoStore struct{ mock.Mock }

func (m *TodoStore) Create(t *models.Todo) error { return m.Called(t).Error(0) }

func (m *TodoStore) GetByID(ownerID, id uint) (*models.Todo, error) {
	args := m.Called(ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *TodoStore) List(ownerID uint, f stores.TodoFilter) ([]models.Todo, error) {
	args := m.Called(ownerID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

func (m *TodoStore) Replace(t *models.Todo) error { return m.Called(t).Error(0) }

func (m *TodoStore) Patch(ownerID, id uint, patch stores.TodoPatch) error {
	return m.Called(ownerID, id, patch).Error(0)
}

func (m *TodoStore) Delete(ownerID, id uint) error { return m.Called(ownerID, id).Error(0) }
