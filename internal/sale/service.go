package sale

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/customer"
	"github.com/gestionpme/api-gestion/internal/material"
	"github.com/gestionpme/api-gestion/internal/relation"
)

// Service enforces the business rules around sales: titre uniqueness, the
// existence of the owning customer and the synchronization of the materials
// relation. Unknown material ids are dropped without error.
type Service struct {
	db        *gorm.DB
	repo      Repository
	customers customer.Repository
	materials material.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:        db,
		repo:      NewRepository(),
		customers: customer.NewRepository(),
		materials: material.NewRepository(),
	}
}

func (s *Service) List() ([]Sale, error) {
	return s.repo.ListAll(s.db)
}

func (s *Service) GetByID(id uint) (*Sale, error) {
	sl, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("vente %d: %w", id, apperr.ErrNotFound)
	}
	return sl, err
}

func (s *Service) GetByTitre(titre string) (*Sale, error) {
	sl, err := s.repo.FindByTitre(s.db, titre)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("vente %s: %w", titre, apperr.ErrNotFound)
	}
	return sl, err
}

func (s *Service) resolveMaterials(ids []uint) []material.Material {
	return relation.Resolve(ids, func(id uint) (*material.Material, error) {
		return s.materials.FindByID(s.db, id)
	})
}

// Create fails with ErrInvalidReference when the customer does not exist;
// nothing is persisted in that case. A nil material list means no linked
// materials.
func (s *Service) Create(titre, description string, customerID uint, materialIDs []uint) (*Sale, error) {
	if _, err := s.repo.FindByTitre(s.db, titre); err == nil {
		return nil, fmt.Errorf("titre %s: %w", titre, apperr.ErrConflict)
	}
	if _, err := s.customers.FindByID(s.db, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", customerID, apperr.ErrInvalidReference)
		}
		return nil, err
	}

	sl := &Sale{
		Titre:       titre,
		Description: description,
		CustomerID:  customerID,
		Materials:   s.resolveMaterials(materialIDs),
	}
	if err := s.repo.Create(s.db, sl); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, sl.ID)
}

// Update applies partial-update semantics on scalar fields and always
// re-synchronizes the materials relation from materialIDs: an omitted list
// clears it. An unknown customer id is skipped silently.
func (s *Service) Update(id uint, titre, description *string, customerID *uint, materialIDs []uint) (*Sale, error) {
	sl, err := s.repo.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("vente %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if titre != nil {
		sl.Titre = *titre
	}
	if description != nil {
		sl.Description = *description
	}
	if customerID != nil {
		if _, err := s.customers.FindByID(s.db, *customerID); err == nil {
			sl.CustomerID = *customerID
		}
	}

	if err := s.repo.Save(s.db, sl); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceMaterials(s.db, sl, s.resolveMaterials(materialIDs)); err != nil {
		return nil, err
	}
	return s.repo.FindByID(s.db, id)
}

// Delete removes the sale and its junction rows; the materials themselves
// stay.
func (s *Service) Delete(id uint) error {
	if _, err := s.repo.FindByID(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vente %d: %w", id, apperr.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(s.db, id)
}
