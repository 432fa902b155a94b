package material

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
)

// Service enforces designation uniqueness at creation time.
type Service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepository()}
}

func (s *Service) List() ([]Material, error) {
	return s.repo.ListAll(s.db)
}

func (s *Service) GetByID(id uint) (*Material, error) {
	m, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("matériel %d: %w", id, apperr.ErrNotFound)
	}
	return m, err
}

func (s *Service) GetByDesignation(designation string) (*Material, error) {
	m, err := s.repo.FindByDesignation(s.db, designation)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("matériel %s: %w", designation, apperr.ErrNotFound)
	}
	return m, err
}

func (s *Service) Create(designation string) (*Material, error) {
	if _, err := s.repo.FindByDesignation(s.db, designation); err == nil {
		return nil, fmt.Errorf("designation %s: %w", designation, apperr.ErrConflict)
	}
	m := &Material{Designation: designation}
	if err := s.repo.Save(s.db, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(id uint, designation *string) (*Material, error) {
	m, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("matériel %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if designation != nil {
		m.Designation = *designation
	}

	if err := s.repo.Save(s.db, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the material; junction rows referencing it disappear with
// it, the sales themselves are untouched.
func (s *Service) Delete(id uint) error {
	if _, err := s.repo.FindByID(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("matériel %d: %w", id, apperr.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(s.db, id)
}
