package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/utils"
)

// Service enforces the business rules around users: e-mail uniqueness,
// password hashing, credential checks for the login endpoint.
type Service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepository()}
}

func (s *Service) List() ([]User, error) {
	return s.repo.ListAll(s.db)
}

func (s *Service) GetByID(id uint) (*User, error) {
	u, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("utilisateur %d: %w", id, apperr.ErrNotFound)
	}
	return u, err
}

func (s *Service) GetByEmail(email string) (*User, error) {
	u, err := s.repo.FindByEmail(s.db, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("utilisateur %s: %w", email, apperr.ErrNotFound)
	}
	return u, err
}

// Create registers a new account. The uniqueness check runs before the
// insert; email additionally carries a storage-level constraint, so a lost
// race surfaces as a store error rather than a duplicate row.
func (s *Service) Create(name, email, password string) (*User, error) {
	if _, err := s.repo.FindByEmail(s.db, email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, apperr.ErrConflict)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &User{Name: name, Email: email, Password: hash}
	if err := s.repo.Save(s.db, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update applies partial-update semantics: a nil field keeps the current
// value. A changed email goes through the same uniqueness check as Create.
// UpdatedAt is refreshed even when nothing else changed.
func (s *Service) Update(id uint, name, email, password *string) (*User, error) {
	u, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("utilisateur %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if name != nil {
		u.Name = *name
	}
	if email != nil && *email != u.Email {
		if _, err := s.repo.FindByEmail(s.db, *email); err == nil {
			return nil, fmt.Errorf("email %s: %w", *email, apperr.ErrConflict)
		}
		u.Email = *email
	}
	if password != nil {
		hash, err := utils.HashPassword(*password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	if err := s.repo.Save(s.db, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the account; its customers (and their sales) go with it
// through the cascade constraints.
func (s *Service) Delete(id uint) error {
	if _, err := s.repo.FindByID(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("utilisateur %d: %w", id, apperr.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(s.db, id)
}

// Authenticate verifies a credential pair for the login endpoint.
func (s *Service) Authenticate(email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(s.db, email)
	if err != nil {
		return nil, fmt.Errorf("utilisateur %s: %w", email, apperr.ErrUnauthenticated)
	}
	if !utils.CheckPassword(u.Password, password) {
		return nil, fmt.Errorf("utilisateur %s: %w", email, apperr.ErrUnauthenticated)
	}
	return u, nil
}
