package ticket

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/relation"
	"github.com/gestionpme/api-gestion/internal/sale"
)

// Service enforces titre uniqueness and the synchronization of the sales
// relation. Unknown sale ids are dropped without error.
type Service struct {
	db    *gorm.DB
	repo  Repository
	sales sale.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepository(), sales: sale.NewRepository()}
}

func (s *Service) List() ([]Ticket, error) {
	return s.repo.ListAll(s.db)
}

func (s *Service) GetByID(id uint) (*Ticket, error) {
	t, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ticket %d: %w", id, apperr.ErrNotFound)
	}
	return t, err
}

func (s *Service) GetByTitre(titre string) (*Ticket, error) {
	t, err := s.repo.FindByTitre(s.db, titre)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ticket %s: %w", titre, apperr.ErrNotFound)
	}
	return t, err
}

func (s *Service) resolveSales(ids []uint) []sale.Sale {
	return relation.Resolve(ids, func(id uint) (*sale.Sale, error) {
		return s.sales.FindByID(s.db, id)
	})
}

func (s *Service) Create(titre, description string, saleIDs []uint) (*Ticket, error) {
	if _, err := s.repo.FindByTitre(s.db, titre); err == nil {
		return nil, fmt.Errorf("titre %s: %w", titre, apperr.ErrConflict)
	}

	t := &Ticket{
		Titre:       titre,
		Description: description,
		Sales:       s.resolveSales(saleIDs),
	}
	if err := s.repo.Create(s.db, t); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, t.ID)
}

// Update applies partial-update semantics on scalar fields and always
// re-synchronizes the sales relation from saleIDs: an omitted list clears
// it.
func (s *Service) Update(id uint, titre, description *string, saleIDs []uint) (*Ticket, error) {
	t, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ticket %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if titre != nil {
		t.Titre = *titre
	}
	if description != nil {
		t.Description = *description
	}

	if err := s.repo.Save(s.db, t); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceSales(s.db, t, s.resolveSales(saleIDs)); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, id)
}

// Delete removes the ticket and its junction rows; the sales themselves
// stay.
func (s *Service) Delete(id uint) error {
	if _, err := s.repo.FindByID(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("ticket %d: %w", id, apperr.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(s.db, id)
}
