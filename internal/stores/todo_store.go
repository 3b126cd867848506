package stores

import (
	"gorm.io/gorm"

	"todosapp/internal/models"
)

// TodoFilter narrows List. Nil fields are ignored; set fields must all match.
type TodoFilter struct {
	Title    *string
	Complete *bool
	Priority *int
}

// TodoPatch maps column names to new values for a partial update. Only the
// columns a caller explicitly supplied appear in the map.
type TodoPatch map[string]interface{}

// TodoStore abstracts todo persistence. Every operation is scoped to the
// owning user; rows belonging to other users are invisible and read as
// ErrNotFound.
type TodoStore interface {
	Create(t *models.Todo) error
	GetByID(ownerID, id uint) (*models.Todo, error)
	List(ownerID uint, f TodoFilter) ([]models.Todo, error)
	// Replace overwrites every mutable field of the todo identified by
	// t.ID and t.OwnerID.
	Replace(t *models.Todo) error
	Patch(ownerID, id uint, patch TodoPatch) error
	Delete(ownerID, id uint) error
}

// GormTodoStore implements TodoStore using GORM.
type GormTodoStore struct{ DB *gorm.DB }

func (s *GormTodoStore) Create(t *models.Todo) error {
	return s.DB.Create(t).Error
}

func (s *GormTodoStore) GetByID(ownerID, id uint) (*models.Todo, error) {
	var t models.Todo
	if err := s.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *GormTodoStore) List(ownerID uint, f TodoFilter) ([]models.Todo, error) {
	q := s.DB.Where("owner_id = ?", ownerID)
	if f.Title != nil {
		q = q.Where("title = ?", *f.Title)
	}
	if f.Complete != nil {
		q = q.Where("complete = ?", *f.Complete)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}

	todos := make([]models.Todo, 0)
	if err := q.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *GormTodoStore) Replace(t *models.Todo) error {
	var existing models.Todo
	if err := s.DB.Where("id = ? AND owner_id = ?", t.ID, t.OwnerID).First(&existing).Error; err != nil {
		return err
	}

	existing.Title = t.Title
	existing.Description = t.Description
	existing.Priority = t.Priority
	existing.Complete = t.Complete
	return s.DB.Save(&existing).Error
}

func (s *GormTodoStore) Patch(ownerID, id uint, patch TodoPatch) error {
	var existing models.Todo
	if err := s.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&existing).Error; err != nil {
		return err
	}
	if len(patch) == 0 {
		return nil
	}
	return s.DB.Model(&existing).Updates(map[string]interface{}(patch)).Error
}

// Delete removes the row directly, without fetching it first.
func (s *GormTodoStore) Delete(ownerID, id uint) error {
	res := s.DB.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
