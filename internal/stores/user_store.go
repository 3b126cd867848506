package stores

import (
	"errors"

	"gorm.io/gorm"

	"todosapp/internal/models"
)

var (
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrConflict is returned when a unique constraint (username, email)
	// rejects an insert.
	ErrConflict = errors.New("record already exists")
)

// UserFilter narrows ListUsers. Nil fields are ignored; set fields must all
// match.
type UserFilter struct {
	Username *string
	Role     *string
	IsActive *bool
}

// UserStore abstracts user persistence.
type UserStore interface {
	// CreateUser persists a new user, or returns ErrConflict when the
	// username or email is taken.
	CreateUser(u *models.User) error
	// FindByUsername returns a user if it exists, or ErrNotFound.
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	ListUsers(f UserFilter) ([]models.User, error)
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) CreateUser(u *models.User) error {
	if err := s.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers applies every set filter field as a conjunctive predicate on a
// single query.
func (s *GormUserStore) ListUsers(f UserFilter) ([]models.User, error) {
	q := s.DB.Model(&models.User{})
	if f.Username != nil {
		q = q.Where("username = ?", *f.Username)
	}
	if f.Role != nil {
		q = q.Where("role = ?", *f.Role)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	users := make([]models.User, 0)
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
