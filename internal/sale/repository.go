package sale

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestionpme/api-gestion/internal/material"
)

type Repository interface {
	ListAll(db *gorm.DB) ([]Sale, error)
	FindByID(db *gorm.DB, id uint) (*Sale, error)
	FindByTitre(db *gorm.DB, titre string) (*Sale, error)
	Create(db *gorm.DB, s *Sale) error
	Save(db *gorm.DB, s *Sale) error
	ReplaceMaterials(db *gorm.DB, s *Sale, materials []material.Material) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Sale, error) {
	var sales []Sale
	err := db.Preload("Materials").Preload("Customer").Find(&sales).Error
	return sales, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Sale, error) {
	var s Sale
	if err := db.Preload("Materials").Preload("Customer").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) FindByTitre(db *gorm.DB, titre string) (*Sale, error) {
	var s Sale
	if err := db.Where("titre = ?", titre).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the sale and its junction rows; the referenced material
// rows themselves are left untouched.
func (r *repositoryImpl) Create(db *gorm.DB, s *Sale) error {
	return db.Omit("Materials.*", "Customer").Create(s).Error
}

// Save writes scalar columns only; relations go through ReplaceMaterials.
func (r *repositoryImpl) Save(db *gorm.DB, s *Sale) error {
	return db.Omit(clause.Associations).Save(s).Error
}

// ReplaceMaterials makes the junction rows match exactly the given set.
func (r *repositoryImpl) ReplaceMaterials(db *gorm.DB, s *Sale, materials []material.Material) error {
	if len(materials) == 0 {
		return db.Model(s).Association("Materials").Clear()
	}
	return db.Model(s).Association("Materials").Replace(&materials)
}

// Delete removes the sale together with its junction rows. The cascade is
// also declared on the foreign keys, but clearing associations here keeps
// the behaviour identical on stores without enforced constraints.
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Select(clause.Associations).Delete(&Sale{ID: id}).Error
}
