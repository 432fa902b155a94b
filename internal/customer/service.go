package customer

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/user"
)

// Service enforces the business rules around customers: surnom uniqueness
// at creation time and the existence of the owning user.
type Service struct {
	db    *gorm.DB
	repo  Repository
	users user.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepository(), users: user.NewRepository()}
}

func (s *Service) List() ([]Customer, error) {
	return s.repo.ListAll(s.db)
}

func (s *Service) GetByID(id uint) (*Customer, error) {
	c, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("client %d: %w", id, apperr.ErrNotFound)
	}
	return c, err
}

func (s *Service) GetBySurnom(surnom string) (*Customer, error) {
	c, err := s.repo.FindBySurnom(s.db, surnom)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("client %s: %w", surnom, apperr.ErrNotFound)
	}
	return c, err
}

// Create fails with ErrInvalidReference when the owning user does not
// exist; nothing is persisted in that case.
func (s *Service) Create(surnom string, userID uint) (*Customer, error) {
	if _, err := s.repo.FindBySurnom(s.db, surnom); err == nil {
		return nil, fmt.Errorf("surnom %s: %w", surnom, apperr.ErrConflict)
	}
	if _, err := s.users.FindByID(s.db, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("utilisateur %d: %w", userID, apperr.ErrInvalidReference)
		}
		return nil, err
	}

	c := &Customer{Surnom: surnom, UserID: userID}
	if err := s.repo.Save(s.db, c); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, c.ID)
}

// Update applies partial-update semantics. An unknown user id is skipped
// silently, leaving the current owner in place.
func (s *Service) Update(id uint, surnom *string, userID *uint) (*Customer, error) {
	c, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("client %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if surnom != nil {
		c.Surnom = *surnom
	}
	if userID != nil {
		if _, err := s.users.FindByID(s.db, *userID); err == nil {
			c.UserID = *userID
		}
	}

	if err := s.repo.Save(s.db, c); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, id)
}

// Delete removes the customer; its sales follow through the cascade
// constraint.
func (s *Service) Delete(id uint) error {
	if _, err := s.repo.FindByID(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("client %d: %w", id, apperr.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(s.db, id)
}
